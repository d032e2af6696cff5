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

// mockCompleteTaskStore implements a test double for CompleteTaskStore
type mockCompleteTaskStore struct {
	task          *db.SessionTask
	getErr        error
	completeErr   error
	pointsErr     error
	completedAt   string
	pointsEntries []*db.PointsEntry
}

func (m *mockCompleteTaskStore) GetTask(ctx context.Context, taskID string) (*db.SessionTask, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.task, nil
}

func (m *mockCompleteTaskStore) SetTaskCompleted(ctx context.Context, taskID, completedAt string) error {
	if m.completeErr != nil {
		return m.completeErr
	}
	m.completedAt = completedAt
	return nil
}

func (m *mockCompleteTaskStore) InsertPointsEntry(ctx context.Context, entry *db.PointsEntry) error {
	if m.pointsErr != nil {
		return m.pointsErr
	}
	m.pointsEntries = append(m.pointsEntries, entry)
	return nil
}

func TestCompleteTask_AwardsPoints(t *testing.T) {
	now := time.Date(2025, 4, 5, 14, 30, 0, 0, time.UTC)
	mock := &mockCompleteTaskStore{
		task: &db.SessionTask{ID: "t1", MemberID: "member-1", Points: 10, AssignedAt: "2025-04-05T13:00:00Z"},
	}

	result, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-1", false, now)
	require.NoError(t, err)

	assert.Equal(t, "2025-04-05T14:30:00Z", result.CompletedAt)
	assert.Equal(t, mock.completedAt, result.CompletedAt)
	assert.Equal(t, 10, result.PointsAwarded)
	assert.False(t, result.PointsDeferred)

	require.Len(t, mock.pointsEntries, 1)
	assert.Equal(t, "member-1", mock.pointsEntries[0].MemberID)
	assert.Equal(t, 10, mock.pointsEntries[0].Points)
}

func TestCompleteTask_UnassignedTaskClaimable(t *testing.T) {
	mock := &mockCompleteTaskStore{
		task: &db.SessionTask{ID: "t1", Points: 5},
	}

	result, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-2", false, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5, result.PointsAwarded)
}

func TestCompleteTask_AlreadyCompleted(t *testing.T) {
	mock := &mockCompleteTaskStore{
		task: &db.SessionTask{ID: "t1", MemberID: "member-1", CompletedAt: "2025-04-05T10:00:00Z"},
	}

	_, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-1", false, time.Now())
	assert.Error(t, err)
}

func TestCompleteTask_AssignedToAnotherMember(t *testing.T) {
	mock := &mockCompleteTaskStore{
		task: &db.SessionTask{ID: "t1", MemberID: "member-1"},
	}

	_, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-2", false, time.Now())
	assert.Error(t, err)
}

func TestCompleteTask_PointsFailureBestEffort(t *testing.T) {
	mock := &mockCompleteTaskStore{
		task:      &db.SessionTask{ID: "t1", MemberID: "member-1", Points: 10},
		pointsErr: errors.New("connection reset"),
	}

	result, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-1", false, time.Now())
	require.NoError(t, err, "best-effort mode keeps the completion")
	assert.True(t, result.PointsDeferred)
	assert.Zero(t, result.PointsAwarded)
	assert.NotEmpty(t, mock.completedAt, "completion stamp persists")
}

func TestCompleteTask_PointsFailureStrict(t *testing.T) {
	mock := &mockCompleteTaskStore{
		task:      &db.SessionTask{ID: "t1", MemberID: "member-1", Points: 10},
		pointsErr: errors.New("connection reset"),
	}

	_, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-1", true, time.Now())
	assert.Error(t, err, "strict mode surfaces the points failure")
}

func TestCompleteTask_CompletionFailureAlwaysFatal(t *testing.T) {
	mock := &mockCompleteTaskStore{
		task:        &db.SessionTask{ID: "t1", MemberID: "member-1"},
		completeErr: errors.New("deadlock"),
	}

	_, err := CompleteTask(context.Background(), mock, zap.NewNop(), "t1", "member-1", false, time.Now())
	assert.Error(t, err)
}
