package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/db"
)

// CompleteTaskStore defines the database operations needed to complete a task
type CompleteTaskStore interface {
	GetTask(ctx context.Context, taskID string) (*db.SessionTask, error)
	SetTaskCompleted(ctx context.Context, taskID, completedAt string) error
	InsertPointsEntry(ctx context.Context, entry *db.PointsEntry) error
}

// CompleteTaskResult reports the completion outcome
type CompleteTaskResult struct {
	TaskID         string `json:"task_id"`
	CompletedAt    string `json:"completed_at"`
	PointsAwarded  int    `json:"points_awarded"`
	PointsDeferred bool   `json:"points_deferred,omitempty"`
}

// CompleteTask stamps a task complete and awards its points to the member.
//
// strict controls what happens when awarding points fails after the
// completion stamp has been persisted: in strict mode the error is surfaced
// to the caller; otherwise the failure is logged and the completion still
// succeeds with PointsDeferred set, so a flaky points write never blocks a
// member from finishing their work.
func CompleteTask(ctx context.Context, store CompleteTaskStore, logger *zap.Logger, taskID, memberID string, strict bool, now time.Time) (*CompleteTaskResult, error) {
	task, err := store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	if task.CompletedAt != "" {
		return nil, fmt.Errorf("task %s is already completed", taskID)
	}
	if task.MemberID != "" && task.MemberID != memberID {
		return nil, fmt.Errorf("task %s is assigned to another member", taskID)
	}

	completedAt := now.UTC().Format(time.RFC3339)
	if err := store.SetTaskCompleted(ctx, taskID, completedAt); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	logger.Info("Task completed",
		zap.String("task_id", taskID),
		zap.String("member_id", memberID),
		zap.Int("points", task.Points))

	result := &CompleteTaskResult{
		TaskID:        taskID,
		CompletedAt:   completedAt,
		PointsAwarded: task.Points,
	}

	if task.Points > 0 {
		entry := &db.PointsEntry{
			ID:        uuid.New().String(),
			MemberID:  memberID,
			TaskID:    taskID,
			Points:    task.Points,
			AwardedAt: completedAt,
		}
		if err := store.InsertPointsEntry(ctx, entry); err != nil {
			if strict {
				return nil, fmt.Errorf("failed to award points: %w", err)
			}
			logger.Warn("Failed to award points, completion kept",
				zap.String("task_id", taskID),
				zap.Error(err))
			result.PointsAwarded = 0
			result.PointsDeferred = true
		}
	}

	return result, nil
}
