package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/crossguard/crossguard/internal/config"
	"github.com/crossguard/crossguard/pkg/logging"
	"github.com/crossguard/crossguard/pkg/postgres"
	"github.com/crossguard/crossguard/pkg/services"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	database *postgres.DB
	logger   *zap.Logger
	ctx      context.Context
}

var (
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crossguard",
		Short: "Crossing guard duty scheduler",
		Long:  `Assigns guards to duty days over a date range according to their availability preferences, avoiding vacations and holidays and biasing toward an even rotation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.logger != nil {
					app.logger.Sync()
				}
				if app.database != nil {
					app.database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "crossguard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(showConfigCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(showScheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and (when configured) the database
func initApp() error {
	var err error
	app = &App{ctx: context.Background()}

	app.logger, err = logging.New()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded", zap.String("path", configPath))

	if app.cfg.DatabaseURL != "" {
		app.database, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := app.database.RunMigrations(app.ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.logger.Debug("Database initialized")
	}

	return nil
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <roster_file> <first_date> <last_date>",
		Short: "Generate an assignment for the period (dates as dd.mm.yyyy)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("out")
			save, _ := cmd.Flags().GetBool("save")

			out, err := services.Generate(app.ctx, app.database, app.logger, services.GenerateInput{
				Config:     app.cfg,
				RosterPath: args[0],
				FirstDate:  args[1],
				LastDate:   args[2],
				Format:     format,
				Save:       save,
			})
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(out.Rendered), 0644); err != nil {
					return fmt.Errorf("failed to write output file: %w", err)
				}
				fmt.Printf("Output written to %s\n", outPath)
			} else {
				fmt.Print(out.Rendered)
			}

			if out.Result.FailCount > 0 {
				fmt.Printf("\n%d duty days could not be filled.\n", out.Result.FailCount)
			}
			if out.ScheduleID != "" {
				fmt.Printf("Saved as schedule %s\n", out.ScheduleID)
			}
			return nil
		},
	}

	cmd.Flags().String("format", services.FormatDates, "Output format: dates|persons|calendar|html|roster")
	cmd.Flags().String("out", "", "Write output to this file instead of stdout")
	cmd.Flags().Bool("save", false, "Persist the schedule to the configured database")

	return cmd
}

func showConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "showConfig",
		Short: "Print the effective configuration including applied defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := services.History(app.ctx, app.database, app.logger)
			if err != nil {
				return err
			}
			fmt.Print(listing)
			return nil
		},
	}
}

func showScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "showSchedule <schedule_id>",
		Short: "Show one stored schedule day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := services.ShowSchedule(app.ctx, app.database, args[0])
			if err != nil {
				return err
			}
			fmt.Print(listing)
			return nil
		},
	}
}
