package postgres

import (
	"context"
	"fmt"

	"github.com/dulbrich/wardclean/pkg/db"
)

// InsertPointsEntry records points awarded for a completed task
func (d *DB) InsertPointsEntry(ctx context.Context, entry *db.PointsEntry) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO points_entry (id, member_id, task_id, points, awarded_at)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, entry.MemberID, entry.TaskID, entry.Points, entry.AwardedAt)
	if err != nil {
		return fmt.Errorf("failed to insert points entry: %w", err)
	}
	return nil
}

// GetPointsTotals retrieves summed points per member, highest first
func (d *DB) GetPointsTotals(ctx context.Context) ([]db.PointsTotal, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT pe.member_id,
		       COALESCE(mp.first_name || ' ' || mp.last_name, pe.member_id),
		       SUM(pe.points)
		FROM points_entry pe
		LEFT JOIN member_profile mp ON mp.id = pe.member_id
		GROUP BY pe.member_id, mp.first_name, mp.last_name
		ORDER BY SUM(pe.points) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query points totals: %w", err)
	}
	defer rows.Close()

	var totals []db.PointsTotal
	for rows.Next() {
		var t db.PointsTotal
		if err := rows.Scan(&t.MemberID, &t.DisplayName, &t.Points); err != nil {
			return nil, fmt.Errorf("failed to scan points total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating points totals: %w", err)
	}

	return totals, nil
}
