package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/db"
)

// mockTaskStore implements a test double for db.TaskStore
type mockTaskStore struct {
	tasks  []db.SessionTask
	getErr error
}

func (m *mockTaskStore) GetMemberTasks(ctx context.Context, memberID string) ([]db.SessionTask, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.tasks, nil
}

func (m *mockTaskStore) GetTask(ctx context.Context, taskID string) (*db.SessionTask, error) {
	return nil, errors.New("not implemented")
}

func (m *mockTaskStore) SetTaskCompleted(ctx context.Context, taskID, completedAt string) error {
	return errors.New("not implemented")
}

func TestViewStats_WeekRange(t *testing.T) {
	now := time.Date(2025, 4, 8, 12, 0, 0, 0, time.UTC)
	mock := &mockTaskStore{
		tasks: []db.SessionTask{
			{ID: "t1", AssignedAt: "2025-04-05T09:00:00Z", CompletedAt: "2025-04-05T11:30:00Z"}, // capped at 2.0
			{ID: "t2", AssignedAt: "2025-04-05T13:00:00Z", CompletedAt: "2025-04-05T13:45:00Z"}, // 0.75
			{ID: "old", AssignedAt: "2025-03-01T09:00:00Z", CompletedAt: "2025-03-01T10:00:00Z"},
		},
	}

	result, err := ViewStats(context.Background(), mock, zap.NewNop(), "member-1", "week", now)
	require.NoError(t, err)

	assert.Equal(t, "week", result.Range)
	require.Len(t, result.Daily, 8, "inclusive 7-day trailing window")

	var saturday *int
	for i := range result.Daily {
		if result.Daily[i].Date == "2025-04-05" {
			saturday = &i
			break
		}
	}
	require.NotNil(t, saturday)
	assert.Equal(t, 2.8, result.Daily[*saturday].Hours) // 2.0 + 0.75 rounds half-up
	assert.Equal(t, 2, result.Daily[*saturday].TaskCount)

	// Lifetime total includes the out-of-window task
	assert.Equal(t, 3.8, result.TotalHours)
}

func TestViewStats_EmptyTasksStillDense(t *testing.T) {
	now := time.Date(2025, 4, 8, 12, 0, 0, 0, time.UTC)
	mock := &mockTaskStore{}

	result, err := ViewStats(context.Background(), mock, zap.NewNop(), "member-1", "week", now)
	require.NoError(t, err)

	require.Len(t, result.Daily, 8)
	for _, bucket := range result.Daily {
		assert.Zero(t, bucket.Hours)
		assert.Zero(t, bucket.TaskCount)
	}
	assert.Empty(t, result.Weekly)
	assert.Zero(t, result.TotalHours)
}

func TestViewStats_UnknownRange(t *testing.T) {
	mock := &mockTaskStore{}
	_, err := ViewStats(context.Background(), mock, zap.NewNop(), "member-1", "decade", time.Now())
	assert.Error(t, err)
}

func TestViewStats_StoreError(t *testing.T) {
	mock := &mockTaskStore{getErr: errors.New("timeout")}
	_, err := ViewStats(context.Background(), mock, zap.NewNop(), "member-1", "week", time.Now())
	assert.Error(t, err)
}
