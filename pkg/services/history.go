package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/postgres"
)

// History renders the stored schedules as a listing, newest first.
func History(ctx context.Context, db *postgres.DB, logger *zap.Logger) (string, error) {
	if db == nil {
		return "", fmt.Errorf("cannot list schedules: no databaseURL configured")
	}

	schedules, err := db.ListSchedules(ctx)
	if err != nil {
		return "", err
	}
	logger.Info("Schedules loaded", zap.Int("count", len(schedules)))

	if len(schedules) == 0 {
		return "No schedules stored.\n", nil
	}

	var b strings.Builder
	for _, s := range schedules {
		fmt.Fprintf(&b, "%s  %s - %s  score %.4f  assigned %d  failed %d  (%s)\n",
			s.ID,
			calendar.FormatDayIndex(s.PeriodFirst),
			calendar.FormatDayIndex(s.PeriodLast),
			s.Score,
			s.AssignedCount,
			s.FailCount,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return b.String(), nil
}

// ShowSchedule renders one stored schedule day by day.
func ShowSchedule(ctx context.Context, db *postgres.DB, id string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("cannot load schedule: no databaseURL configured")
	}

	s, err := db.GetSchedule(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Schedule %s (%s - %s)\n\n", s.ID,
		calendar.FormatDayIndex(s.PeriodFirst), calendar.FormatDayIndex(s.PeriodLast))
	for _, a := range s.Assignments {
		wday := calendar.WeekdayOf(a.Day)
		fmt.Fprintf(&b, "    (W%02d) %s %s: %s\n",
			calendar.WeekNumberOfDay(a.Day), wday, calendar.FormatDayIndex(a.Day), a.PersonName)
	}
	return b.String(), nil
}
