// Package services orchestrates the scheduling workflows behind the CLI
// commands.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crossguard/crossguard/internal/config"
	"github.com/crossguard/crossguard/pkg/assigner"
	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/postgres"
	"github.com/crossguard/crossguard/pkg/render"
	"github.com/crossguard/crossguard/pkg/roster"
	"github.com/crossguard/crossguard/pkg/rosterfile"
)

// Output formats accepted by Generate.
const (
	FormatDates    = "dates"
	FormatPersons  = "persons"
	FormatCalendar = "calendar"
	FormatHTML     = "html"
	FormatRoster   = "roster"
)

// GenerateInput bundles the parameters of a generate run.
type GenerateInput struct {
	Config     *config.Config
	RosterPath string
	FirstDate  string // "dd.mm.yyyy"
	LastDate   string // "dd.mm.yyyy"
	Format     string
	Save       bool
}

// GenerateOutput is the result of a generate run.
type GenerateOutput struct {
	Rendered   string
	Result     *assigner.Result
	Period     roster.Period
	ScheduleID string // set when the schedule was persisted
}

// Generate loads the roster, runs the assigner over the requested period and
// renders the best assignment. With Save set and a database configured, the
// schedule is also persisted under a fresh ID.
func Generate(ctx context.Context, db *postgres.DB, logger *zap.Logger, in GenerateInput) (*GenerateOutput, error) {
	period, err := parsePeriod(in.FirstDate, in.LastDate)
	if err != nil {
		return nil, err
	}

	source, err := rosterfile.Load(in.RosterPath)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("roster %s contains no persons", in.RosterPath)
	}

	cfg, err := in.Config.AssignerConfig(period)
	if err != nil {
		return nil, err
	}

	logger.Info("Generating assignment",
		zap.String("period", period.String()),
		zap.Int("persons", len(source)),
		zap.Int("cycles", cfg.Cycles),
		zap.Int64("seed", cfg.Seed))

	result := assigner.CreateAssignment(cfg, source, period)

	logger.Info("Assignment complete",
		zap.Float64("score", result.Score),
		zap.Int("assigned", result.AssignedCount),
		zap.Int("failed", result.FailCount))

	out := &GenerateOutput{Result: result, Period: period}

	switch in.Format {
	case FormatDates, "":
		out.Rendered = render.Days(cfg, result.Roster, period)
	case FormatPersons:
		out.Rendered = render.Persons(result.Roster)
	case FormatCalendar:
		out.Rendered = render.Calendar(cfg, result.Roster, period)
	case FormatHTML:
		out.Rendered = render.HTMLTable(cfg, result.Roster, period)
	case FormatRoster:
		data, err := rosterfile.Marshal(result.Roster)
		if err != nil {
			return nil, err
		}
		out.Rendered = string(data)
	default:
		return nil, fmt.Errorf("unknown output format %q (choose from dates|persons|calendar|html|roster)", in.Format)
	}

	if in.Save {
		if db == nil {
			return nil, fmt.Errorf("cannot save schedule: no databaseURL configured")
		}
		out.ScheduleID, err = saveSchedule(ctx, db, result, period)
		if err != nil {
			return nil, err
		}
		logger.Info("Schedule saved", zap.String("schedule_id", out.ScheduleID))
	}

	return out, nil
}

func saveSchedule(ctx context.Context, db *postgres.DB, result *assigner.Result, period roster.Period) (string, error) {
	s := &postgres.Schedule{
		ID:            uuid.NewString(),
		PeriodFirst:   period.First,
		PeriodLast:    period.Last,
		Score:         result.Score,
		AssignedCount: result.AssignedCount,
		FailCount:     result.FailCount,
	}
	for _, p := range result.Roster {
		for _, day := range p.AssignedDays {
			if period.Inside(day) {
				s.Assignments = append(s.Assignments, postgres.Assignment{PersonName: p.Name, Day: day})
			}
		}
	}
	if err := db.SaveSchedule(ctx, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func parsePeriod(first, last string) (roster.Period, error) {
	firstDay, err := calendar.ParseDayIndex(first)
	if err != nil {
		return roster.Period{}, fmt.Errorf("invalid start date: %w", err)
	}
	lastDay, err := calendar.ParseDayIndex(last)
	if err != nil {
		return roster.Period{}, fmt.Errorf("invalid end date: %w", err)
	}
	if firstDay > lastDay {
		return roster.Period{}, fmt.Errorf("period %s - %s ends before it starts", first, last)
	}
	return roster.Period{First: firstDay, Last: lastDay}, nil
}
