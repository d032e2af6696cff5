package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/schedule"
	"github.com/dulbrich/wardclean/pkg/db"
)

// mockScheduleStore implements a test double for db.ScheduleStore
type mockScheduleStore struct {
	dates       []string
	inserted    []db.ScheduleEntry
	getDatesErr error
	insertErr   error
}

func (m *mockScheduleStore) GetScheduleDates(ctx context.Context, locationID string) ([]string, error) {
	if m.getDatesErr != nil {
		return nil, m.getDatesErr
	}
	return m.dates, nil
}

func (m *mockScheduleStore) GetSchedulesBetween(ctx context.Context, locationID, fromDate, toDate string) ([]db.ScheduleEntry, error) {
	return nil, nil
}

func (m *mockScheduleStore) InsertScheduleEntries(ctx context.Context, entries []db.ScheduleEntry) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, entries...)
	return nil
}

func TestGenerateSchedule_AprilScenario(t *testing.T) {
	mock := &mockScheduleStore{}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), mock, logger, "ward-1", []string{"2025-04"}, "13:00:00", "")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Created)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Entries, 4)
	assert.Equal(t, "A", result.Entries[0].AssignedGroup)
	assert.Equal(t, "D", result.Entries[3].AssignedGroup)

	// Every generated entry is persisted with an id
	require.Len(t, mock.inserted, 4)
	for i, row := range mock.inserted {
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, result.Entries[i].Date, row.Date)
		assert.Equal(t, "13:00:00", row.Time)
		assert.Equal(t, "ward-1", row.LocationID)
	}
}

func TestGenerateSchedule_ExistingDatesSkipped(t *testing.T) {
	mock := &mockScheduleStore{
		dates: []string{"2025-04-05", "2025-04-26"},
	}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), mock, logger, "ward-1", []string{"2025-04"}, "13:00:00", "")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, mock.inserted, 2)
}

func TestGenerateSchedule_RecurrenceRuleOverride(t *testing.T) {
	mock := &mockScheduleStore{}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), mock, logger, "ward-1", []string{"2025-04"}, "13:00:00", "FREQ=WEEKLY;BYDAY=SU")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Created)
	require.Len(t, mock.inserted, 4)
	assert.Equal(t, "2025-04-06", mock.inserted[0].Date, "override shifts cleaning to Sundays")
}

func TestGenerateSchedule_InvalidMonthNothingPersisted(t *testing.T) {
	mock := &mockScheduleStore{}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), mock, logger, "ward-1", []string{"2025-04", "bogus"}, "13:00:00", "")
	assert.ErrorIs(t, err, schedule.ErrInvalidInput)
	assert.Nil(t, result)
	assert.Empty(t, mock.inserted, "invalid input must fail before any insert")
}

func TestGenerateSchedule_StoreErrors(t *testing.T) {
	logger := zap.NewNop()

	t.Run("fetch fails", func(t *testing.T) {
		mock := &mockScheduleStore{getDatesErr: errors.New("connection refused")}
		_, err := GenerateSchedule(context.Background(), mock, logger, "ward-1", []string{"2025-04"}, "13:00:00", "")
		assert.Error(t, err)
	})

	t.Run("insert fails", func(t *testing.T) {
		mock := &mockScheduleStore{insertErr: errors.New("unique violation")}
		_, err := GenerateSchedule(context.Background(), mock, logger, "ward-1", []string{"2025-04"}, "13:00:00", "")
		assert.Error(t, err)
	})
}
