package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/db"
)

// MailSender defines the operations needed to send reminder emails
type MailSender interface {
	SendEmail(to, subject, body string) error
}

// SendRemindersStore defines the database operations needed for reminders
type SendRemindersStore interface {
	GetSchedulesBetween(ctx context.Context, locationID, fromDate, toDate string) ([]db.ScheduleEntry, error)
	GetProfilesByGroup(ctx context.Context, assignedGroup string) ([]db.MemberProfile, error)
}

// ReminderFailure records a reminder email that could not be sent
type ReminderFailure struct {
	Email string
	Error string
}

// SendRemindersResult reports reminder delivery per schedule entry
type SendRemindersResult struct {
	Sent     int
	Failures []ReminderFailure
}

// SendReminders emails every member of the assigned group for each cleaning
// date within the next daysAhead days. Individual delivery failures are
// collected, not fatal.
func SendReminders(ctx context.Context, store SendRemindersStore, mailer MailSender, logger *zap.Logger, locationID string, daysAhead int, now time.Time) (*SendRemindersResult, error) {
	if daysAhead <= 0 {
		return nil, fmt.Errorf("days ahead must be positive, got %d", daysAhead)
	}

	fromDate := now.UTC().Format("2006-01-02")
	toDate := now.UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")

	logger.Info("Sending cleaning reminders",
		zap.String("location_id", locationID),
		zap.String("from", fromDate),
		zap.String("to", toDate))

	schedules, err := store.GetSchedulesBetween(ctx, locationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming schedules: %w", err)
	}

	result := &SendRemindersResult{}
	for _, entry := range schedules {
		profiles, err := store.GetProfilesByGroup(ctx, entry.AssignedGroup)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch group %s profiles: %w", entry.AssignedGroup, err)
		}

		subject := fmt.Sprintf("Building cleaning on %s", entry.Date)
		body := reminderBody(entry)

		for _, profile := range profiles {
			if profile.Email == "" {
				continue
			}
			if err := mailer.SendEmail(profile.Email, subject, body); err != nil {
				logger.Warn("Failed to send reminder",
					zap.String("email", profile.Email),
					zap.Error(err))
				result.Failures = append(result.Failures, ReminderFailure{
					Email: profile.Email,
					Error: err.Error(),
				})
				continue
			}
			result.Sent++
		}
	}

	logger.Info("Reminders sent",
		zap.Int("sent", result.Sent),
		zap.Int("failed", len(result.Failures)))

	return result, nil
}

func reminderBody(entry db.ScheduleEntry) string {
	who := fmt.Sprintf("group %s", entry.AssignedGroup)
	if entry.AssignedGroup == "All" {
		who = "all members"
	}
	return fmt.Sprintf(
		"This Saturday %s at %s it is %s's turn to clean the building.\n\nThank you for serving!",
		entry.Date, entry.Time, who)
}
