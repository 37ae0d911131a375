package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/crossguard/crossguard/pkg/calendar"
)

// Schedule is a persisted assignment outcome.
type Schedule struct {
	ID            string
	PeriodFirst   calendar.DayIndex
	PeriodLast    calendar.DayIndex
	Score         float64
	AssignedCount int
	FailCount     int
	CreatedAt     time.Time
	Assignments   []Assignment
}

// Assignment is one person/day pair of a schedule.
type Assignment struct {
	PersonName string
	Day        calendar.DayIndex
}

// SaveSchedule inserts a schedule and its assignments in one transaction.
func (db *DB) SaveSchedule(ctx context.Context, s *Schedule) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule (id, period_first, period_last, score, assigned_count, fail_count)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, int64(s.PeriodFirst), int64(s.PeriodLast), s.Score, s.AssignedCount, s.FailCount)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}

	for _, a := range s.Assignments {
		_, err = tx.Exec(ctx, `
			INSERT INTO schedule_assignment (schedule_id, person_name, day)
			VALUES ($1, $2, $3)
		`, s.ID, a.PersonName, int64(a.Day))
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule: %w", err)
	}
	return nil
}

// ListSchedules returns all stored schedules without their assignments,
// newest first.
func (db *DB) ListSchedules(ctx context.Context) ([]Schedule, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, period_first, period_last, score, assigned_count, fail_count, created_at
		FROM schedule
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []Schedule
	for rows.Next() {
		var s Schedule
		var first, last int64
		if err := rows.Scan(&s.ID, &first, &last, &s.Score, &s.AssignedCount, &s.FailCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		s.PeriodFirst = calendar.DayIndex(first)
		s.PeriodLast = calendar.DayIndex(last)
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}
	return schedules, nil
}

// GetSchedule loads a schedule and its assignments by ID.
func (db *DB) GetSchedule(ctx context.Context, id string) (*Schedule, error) {
	var s Schedule
	var first, last int64
	err := db.pool.QueryRow(ctx, `
		SELECT id, period_first, period_last, score, assigned_count, fail_count, created_at
		FROM schedule WHERE id = $1
	`, id).Scan(&s.ID, &first, &last, &s.Score, &s.AssignedCount, &s.FailCount, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %s: %w", id, err)
	}
	s.PeriodFirst = calendar.DayIndex(first)
	s.PeriodLast = calendar.DayIndex(last)

	rows, err := db.pool.Query(ctx, `
		SELECT person_name, day FROM schedule_assignment
		WHERE schedule_id = $1
		ORDER BY day
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a Assignment
		var day int64
		if err := rows.Scan(&a.PersonName, &day); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Day = calendar.DayIndex(day)
		s.Assignments = append(s.Assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return &s, nil
}
