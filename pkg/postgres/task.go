package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dulbrich/wardclean/pkg/db"
)

// GetMemberTasks retrieves every session task assigned to a member, including
// tasks recorded under a linked anonymous temp id before registration
func (d *DB) GetMemberTasks(ctx context.Context, memberID string) ([]db.SessionTask, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, session_id, member_id, description, points, assigned_at, completed_at
		FROM session_task
		WHERE member_id = $1
	`, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member tasks: %w", err)
	}
	defer rows.Close()

	var tasks []db.SessionTask
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member tasks: %w", err)
	}

	return tasks, nil
}

// GetTask retrieves a single session task by id
func (d *DB) GetTask(ctx context.Context, taskID string) (*db.SessionTask, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, session_id, member_id, description, points, assigned_at, completed_at
		FROM session_task
		WHERE id = $1
	`, taskID)

	task, err := scanTask(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	return task, nil
}

// SetTaskCompleted stamps a task's completion time
func (d *DB) SetTaskCompleted(ctx context.Context, taskID, completedAt string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE session_task SET completed_at = $2 WHERE id = $1
	`, taskID, completedAt)
	if err != nil {
		return fmt.Errorf("failed to set task completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s not found", taskID)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*db.SessionTask, error) {
	var t db.SessionTask
	var memberID *string
	var assignedAt, completedAt *time.Time
	if err := scan(&t.ID, &t.SessionID, &memberID, &t.Description, &t.Points, &assignedAt, &completedAt); err != nil {
		return nil, fmt.Errorf("failed to scan session task: %w", err)
	}
	if memberID != nil {
		t.MemberID = *memberID
	}
	if assignedAt != nil {
		t.AssignedAt = assignedAt.UTC().Format(time.RFC3339)
	}
	if completedAt != nil {
		t.CompletedAt = completedAt.UTC().Format(time.RFC3339)
	}
	return &t, nil
}
