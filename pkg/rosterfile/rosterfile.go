// Package rosterfile reads and writes rosters as YAML. It owns the external
// representation (dates as "dd.mm.yyyy", weekdays as tokens, "any" for an
// unpinned person) and keeps the core data model free of serialization
// concerns.
package rosterfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

// PeriodSpec is a serialized date range.
type PeriodSpec struct {
	First string `yaml:"first"`
	Last  string `yaml:"last"`
}

// PersonSpec is the serialized form of a person. Weight, Weekdays and
// AlwaysSameWorkday are pointers/nil-able so an omitted field is told apart
// from an explicit zero: omitted fields take the defaults of fromSpec.
type PersonSpec struct {
	Name              string       `yaml:"name"`
	Weight            *float64     `yaml:"weight,omitempty"`
	Weekdays          []string     `yaml:"weekdays"`
	WeeklyPeriod      int          `yaml:"weeklyPeriod,omitempty"`
	AnchorWeek        int          `yaml:"anchorWeek,omitempty"`
	AlwaysSameWorkday *bool        `yaml:"alwaysSameWorkday,omitempty"`
	IncludedDates     []string     `yaml:"includedDates,omitempty"`
	ExcludedDates     []string     `yaml:"excludedDates,omitempty"`
	ExcludedPeriods   []PeriodSpec `yaml:"excludedPeriods,omitempty"`
	PinnedWeekday     string       `yaml:"pinnedWeekday,omitempty"`
	AssignedDays      []string     `yaml:"assignedDays,omitempty"`
}

// File is the top-level roster document.
type File struct {
	Persons []PersonSpec `yaml:"persons"`
}

// Load reads a roster YAML file.
func Load(path string) (roster.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	return FromFile(&f)
}

// Save writes a roster YAML file.
func Save(path string, r roster.Roster) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}
	return nil
}

// Marshal renders a roster as YAML.
func Marshal(r roster.Roster) ([]byte, error) {
	data, err := yaml.Marshal(ToFile(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}
	return data, nil
}

// FromFile converts the serialized document to the core representation.
func FromFile(f *File) (roster.Roster, error) {
	out := make(roster.Roster, 0, len(f.Persons))
	for i, spec := range f.Persons {
		p, err := fromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid persons[%d] (%s): %w", i, spec.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ToFile converts a roster to its serialized document.
func ToFile(r roster.Roster) *File {
	f := &File{Persons: make([]PersonSpec, 0, len(r))}
	for _, p := range r {
		f.Persons = append(f.Persons, toSpec(p))
	}
	return f
}

// fromSpec applies the defaults for omitted fields: weight 1, availability
// Monday through Friday every week, anchor week 1, same workday preferred.
func fromSpec(spec PersonSpec) (*roster.Person, error) {
	prefs := roster.Preferences{
		Weight:            1.0,
		AlwaysSameWorkday: true,
	}
	if spec.Weight != nil {
		prefs.Weight = *spec.Weight
	}
	if spec.AlwaysSameWorkday != nil {
		prefs.AlwaysSameWorkday = *spec.AlwaysSameWorkday
	}
	prefs.Availability.WeeklyPeriod = spec.WeeklyPeriod
	if prefs.Availability.WeeklyPeriod < 1 {
		prefs.Availability.WeeklyPeriod = 1
	}
	prefs.Availability.AnchorWeek = spec.AnchorWeek
	if prefs.Availability.AnchorWeek < 1 {
		prefs.Availability.AnchorWeek = 1
	}

	if spec.Weekdays == nil {
		for wday := calendar.Monday; wday <= calendar.Friday; wday++ {
			prefs.Availability.Weekdays[wday] = true
		}
	}
	for _, token := range spec.Weekdays {
		wday, err := calendar.ParseWeekday(token)
		if err != nil {
			return nil, err
		}
		prefs.Availability.Weekdays[wday] = true
	}

	var err error
	if prefs.IncludedDates, err = parseDates(spec.IncludedDates); err != nil {
		return nil, err
	}
	if prefs.ExcludedDates, err = parseDates(spec.ExcludedDates); err != nil {
		return nil, err
	}
	for _, ps := range spec.ExcludedPeriods {
		first, err := calendar.ParseDayIndex(ps.First)
		if err != nil {
			return nil, err
		}
		last, err := calendar.ParseDayIndex(ps.Last)
		if err != nil {
			return nil, err
		}
		prefs.ExcludedPeriods = append(prefs.ExcludedPeriods, roster.Period{First: first, Last: last})
	}

	p := roster.NewPerson(spec.Name, prefs)

	if spec.PinnedWeekday != "" && spec.PinnedWeekday != "any" {
		if p.PinnedWeekday, err = calendar.ParseWeekday(spec.PinnedWeekday); err != nil {
			return nil, err
		}
	}

	if p.AssignedDays, err = parseDates(spec.AssignedDays); err != nil {
		return nil, err
	}
	// the assignment history must stay in walking order; gap scoring and
	// LastAssigned depend on it
	for i := 1; i < len(p.AssignedDays); i++ {
		if p.AssignedDays[i] <= p.AssignedDays[i-1] {
			return nil, fmt.Errorf("assignedDays out of ascending order at %s",
				calendar.FormatDayIndex(p.AssignedDays[i]))
		}
	}
	return p, nil
}

// toSpec writes every defaultable field explicitly, so a saved roster reads
// back identically regardless of the fromSpec defaults.
func toSpec(p *roster.Person) PersonSpec {
	weight := p.Preferences.Weight
	alwaysSame := p.Preferences.AlwaysSameWorkday
	spec := PersonSpec{
		Name:              p.Name,
		Weight:            &weight,
		Weekdays:          []string{},
		WeeklyPeriod:      p.Preferences.Availability.WeeklyPeriod,
		AnchorWeek:        p.Preferences.Availability.AnchorWeek,
		AlwaysSameWorkday: &alwaysSame,
		IncludedDates:     formatDates(p.Preferences.IncludedDates),
		ExcludedDates:     formatDates(p.Preferences.ExcludedDates),
		PinnedWeekday:     "any",
		AssignedDays:      formatDates(p.AssignedDays),
	}

	for wday := calendar.Monday; wday <= calendar.Sunday; wday++ {
		if p.Preferences.Availability.Weekdays[wday] {
			spec.Weekdays = append(spec.Weekdays, wday.String())
		}
	}
	for _, ep := range p.Preferences.ExcludedPeriods {
		spec.ExcludedPeriods = append(spec.ExcludedPeriods, PeriodSpec{
			First: calendar.FormatDayIndex(ep.First),
			Last:  calendar.FormatDayIndex(ep.Last),
		})
	}
	if p.PinnedWeekday.Valid() {
		spec.PinnedWeekday = p.PinnedWeekday.String()
	}
	return spec
}

func parseDates(specs []string) ([]calendar.DayIndex, error) {
	var days []calendar.DayIndex
	for _, s := range specs {
		day, err := calendar.ParseDayIndex(s)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func formatDates(days []calendar.DayIndex) []string {
	var specs []string
	for _, d := range days {
		specs = append(specs, calendar.FormatDayIndex(d))
	}
	return specs
}
