package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dulbrich/wardclean/pkg/db"
)

// GetScheduleDates retrieves every scheduled date for a location
func (d *DB) GetScheduleDates(ctx context.Context, locationID string) ([]string, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT date FROM schedule_entry WHERE location_id = $1
	`, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan schedule date: %w", err)
		}
		dates = append(dates, date.Format("2006-01-02"))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule dates: %w", err)
	}

	return dates, nil
}

// GetSchedulesBetween retrieves schedule entries for a location with dates in
// [fromDate, toDate], ascending
func (d *DB) GetSchedulesBetween(ctx context.Context, locationID, fromDate, toDate string) ([]db.ScheduleEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, location_id, date, time, assigned_group
		FROM schedule_entry
		WHERE location_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`, locationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	var schedules []db.ScheduleEntry
	for rows.Next() {
		var s db.ScheduleEntry
		var date, timeOfDay time.Time
		if err := rows.Scan(&s.ID, &s.LocationID, &date, &timeOfDay, &s.AssignedGroup); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		s.Date = date.Format("2006-01-02")
		s.Time = timeOfDay.Format("15:04:05")
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule entries: %w", err)
	}

	return schedules, nil
}

// InsertScheduleEntries inserts schedule entries in a single transaction
func (d *DB) InsertScheduleEntries(ctx context.Context, entries []db.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_entry (id, location_id, date, time, assigned_group)
			VALUES ($1, $2, $3, $4, $5)
		`, e.ID, e.LocationID, e.Date, e.Time, e.AssignedGroup)
		if err != nil {
			return fmt.Errorf("failed to insert schedule entry for %s: %w", e.Date, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
