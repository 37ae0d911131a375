// Package config loads and validates the crossguard YAML configuration and
// turns it into assigner settings. Dates are written "dd.mm.yyyy" and
// weekdays as their two-letter tokens; recurring holidays may be given as
// RRULE strings that are expanded over the scheduling period.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/crossguard/crossguard/pkg/assigner"
	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

// PeriodSpec is a date range in the config file.
type PeriodSpec struct {
	First string `yaml:"first" validate:"required"`
	Last  string `yaml:"last" validate:"required"`
}

// Config represents the crossguard configuration file.
type Config struct {
	// ActiveWeekdays lists the duty weekdays ("mo".."su").
	ActiveWeekdays []string `yaml:"activeWeekdays" validate:"required,min=1,max=7"`

	// Vacations are date ranges without duty.
	Vacations []PeriodSpec `yaml:"vacations,omitempty" validate:"dive"`

	// Holidays are single duty-free dates.
	Holidays []string `yaml:"holidays,omitempty"`

	// HolidayRules are RRULE strings expanded into holidays over the
	// scheduling period (e.g. a fixed-date public holiday every year).
	HolidayRules []string `yaml:"holidayRules,omitempty"`

	Seed   int64 `yaml:"seed,omitempty"`
	Cycles int   `yaml:"cycles,omitempty" validate:"omitempty,min=1"`

	// DatabaseURL enables the Postgres schedule store when set.
	DatabaseURL string `yaml:"databaseURL,omitempty"`
}

var validate = validator.New()

// Load reads, parses and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate runs struct validation and checks weekday tokens, date syntax and
// RRULE syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for _, token := range cfg.ActiveWeekdays {
		if _, err := calendar.ParseWeekday(token); err != nil {
			return fmt.Errorf("invalid activeWeekdays entry: %w", err)
		}
	}
	for i, v := range cfg.Vacations {
		if _, _, err := parsePeriod(v); err != nil {
			return fmt.Errorf("invalid vacations[%d]: %w", i, err)
		}
	}
	for i, h := range cfg.Holidays {
		if _, err := calendar.ParseDayIndex(h); err != nil {
			return fmt.Errorf("invalid holidays[%d]: %w", i, err)
		}
	}
	for i, rule := range cfg.HolidayRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Seed == 0 {
		cfg.Seed = 12345
	}
	if cfg.Cycles == 0 {
		cfg.Cycles = 128
	}
}

// AssignerConfig converts the file representation into assigner settings.
// The scheduling period bounds the expansion of holiday rules.
func (cfg *Config) AssignerConfig(period roster.Period) (assigner.Config, error) {
	out := assigner.Config{Seed: cfg.Seed, Cycles: cfg.Cycles}

	for _, token := range cfg.ActiveWeekdays {
		wday, err := calendar.ParseWeekday(token)
		if err != nil {
			return assigner.Config{}, fmt.Errorf("invalid activeWeekdays entry: %w", err)
		}
		out.ActiveWeekdays[wday] = true
	}

	for i, v := range cfg.Vacations {
		first, last, err := parsePeriod(v)
		if err != nil {
			return assigner.Config{}, fmt.Errorf("invalid vacations[%d]: %w", i, err)
		}
		out.VacationPeriods = append(out.VacationPeriods, roster.Period{First: first, Last: last})
	}

	for i, h := range cfg.Holidays {
		day, err := calendar.ParseDayIndex(h)
		if err != nil {
			return assigner.Config{}, fmt.Errorf("invalid holidays[%d]: %w", i, err)
		}
		out.Holidays = append(out.Holidays, day)
	}

	ruleDays, err := cfg.expandHolidayRules(period)
	if err != nil {
		return assigner.Config{}, err
	}
	out.Holidays = append(out.Holidays, ruleDays...)

	return out, nil
}

// expandHolidayRules evaluates each RRULE over the period and converts the
// occurrences to day indexes.
func (cfg *Config) expandHolidayRules(period roster.Period) ([]calendar.DayIndex, error) {
	var days []calendar.DayIndex
	for i, rule := range cfg.HolidayRules {
		r, err := rrule.StrToRRule(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}

		// anchor the rule at the period start so expansion is independent of
		// when the program runs
		r.DTStart(timeOfDay(period.First))

		occurrences := r.Between(timeOfDay(period.First), timeOfDay(period.Last), true)
		for _, t := range occurrences {
			day, err := calendar.DayIndexOf(calendar.Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()})
			if err != nil {
				return nil, fmt.Errorf("holidayRules[%d] outside supported year range: %w", i, err)
			}
			days = append(days, day)
		}
	}
	return days, nil
}

func parsePeriod(spec PeriodSpec) (first, last calendar.DayIndex, err error) {
	if first, err = calendar.ParseDayIndex(spec.First); err != nil {
		return 0, 0, err
	}
	if last, err = calendar.ParseDayIndex(spec.Last); err != nil {
		return 0, 0, err
	}
	if first > last {
		return 0, 0, fmt.Errorf("period %s - %s ends before it starts", spec.First, spec.Last)
	}
	return first, last, nil
}

func timeOfDay(cd calendar.DayIndex) time.Time {
	d := calendar.DateOf(cd)
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
