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

// mockRemindersStore implements a test double for SendRemindersStore
type mockRemindersStore struct {
	schedules       []db.ScheduleEntry
	profilesByGroup map[string][]db.MemberProfile
	requestedGroups []string
}

func (m *mockRemindersStore) GetSchedulesBetween(ctx context.Context, locationID, fromDate, toDate string) ([]db.ScheduleEntry, error) {
	return m.schedules, nil
}

func (m *mockRemindersStore) GetProfilesByGroup(ctx context.Context, assignedGroup string) ([]db.MemberProfile, error) {
	m.requestedGroups = append(m.requestedGroups, assignedGroup)
	return m.profilesByGroup[assignedGroup], nil
}

// mockMailer implements a test double for MailSender
type mockMailer struct {
	sent    []string
	failFor map[string]error
}

func (m *mockMailer) SendEmail(to, subject, body string) error {
	if err := m.failFor[to]; err != nil {
		return err
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestSendReminders_EmailsAssignedGroup(t *testing.T) {
	now := time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC)
	store := &mockRemindersStore{
		schedules: []db.ScheduleEntry{
			{LocationID: "ward-1", Date: "2025-04-05", Time: "13:00:00", AssignedGroup: "A"},
		},
		profilesByGroup: map[string][]db.MemberProfile{
			"A": {
				{ID: "m1", Email: "m1@example.com"},
				{ID: "m2", Email: "m2@example.com"},
				{ID: "m3"}, // no email on file
			},
		},
	}
	mailer := &mockMailer{}

	result, err := SendReminders(context.Background(), store, mailer, zap.NewNop(), "ward-1", 7, now)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Sent)
	assert.Empty(t, result.Failures)
	assert.Equal(t, []string{"m1@example.com", "m2@example.com"}, mailer.sent)
	assert.Equal(t, []string{"A"}, store.requestedGroups)
}

func TestSendReminders_DeliveryFailureCollected(t *testing.T) {
	now := time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC)
	store := &mockRemindersStore{
		schedules: []db.ScheduleEntry{
			{LocationID: "ward-1", Date: "2025-04-05", Time: "13:00:00", AssignedGroup: "B"},
		},
		profilesByGroup: map[string][]db.MemberProfile{
			"B": {
				{ID: "m1", Email: "good@example.com"},
				{ID: "m2", Email: "bad@example.com"},
			},
		},
	}
	mailer := &mockMailer{failFor: map[string]error{"bad@example.com": errors.New("bounced")}}

	result, err := SendReminders(context.Background(), store, mailer, zap.NewNop(), "ward-1", 7, now)
	require.NoError(t, err, "single delivery failures are not fatal")

	assert.Equal(t, 1, result.Sent)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "bad@example.com", result.Failures[0].Email)
}

func TestSendReminders_InvalidDaysAhead(t *testing.T) {
	_, err := SendReminders(context.Background(), &mockRemindersStore{}, &mockMailer{}, zap.NewNop(), "ward-1", 0, time.Now())
	assert.Error(t, err)
}
