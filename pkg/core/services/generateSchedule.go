package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/schedule"
	"github.com/dulbrich/wardclean/pkg/db"
)

// GenerateScheduleResult represents the result of generating a recurring schedule
type GenerateScheduleResult struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Entries []schedule.Entry `json:"data"`
}

// GenerateSchedule creates cleaning schedule entries for the requested
// months. It reads the location's existing dates so already scheduled dates
// are skipped, runs the rotating-group generator, and bulk-inserts the new
// entries. recurrenceRule optionally replaces the every-Saturday default.
func GenerateSchedule(ctx context.Context, store db.ScheduleStore, logger *zap.Logger, locationID string, months []string, defaultTime, recurrenceRule string) (*GenerateScheduleResult, error) {
	logger.Info("Generating recurring schedule",
		zap.String("location_id", locationID),
		zap.Strings("months", months),
		zap.String("default_time", defaultTime))

	logger.Debug("Fetching existing schedule dates")
	dates, err := store.GetScheduleDates(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing schedule dates: %w", err)
	}

	existing := make(map[string]bool, len(dates))
	for _, date := range dates {
		existing[date] = true
	}
	logger.Debug("Found existing schedule dates", zap.Int("count", len(existing)))

	result, err := schedule.Generate(locationID, months, defaultTime, recurrenceRule, existing)
	if err != nil {
		return nil, err
	}

	entries := make([]db.ScheduleEntry, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = db.ScheduleEntry{
			ID:            uuid.New().String(),
			LocationID:    e.LocationID,
			Date:          e.Date,
			Time:          e.Time,
			AssignedGroup: e.AssignedGroup,
		}
	}

	if err := store.InsertScheduleEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to insert schedule entries: %w", err)
	}

	logger.Info("Schedule generated successfully",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))

	return &GenerateScheduleResult{
		Created: result.Created,
		Skipped: result.Skipped,
		Entries: result.Entries,
	}, nil
}
