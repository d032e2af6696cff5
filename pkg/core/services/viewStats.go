package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/stats"
	"github.com/dulbrich/wardclean/pkg/db"
)

// StatsResult contains a member's hours rollups for a named range
type StatsResult struct {
	Range      string               `json:"range"`
	Daily      []stats.DailyBucket  `json:"daily"`
	Weekly     []stats.WeeklyBucket `json:"weekly"`
	TotalHours float64              `json:"total_hours"`
}

// ViewStats resolves the named range to a concrete window, fetches the
// member's tasks, and computes the daily, weekly and lifetime rollups.
// The lifetime total always covers all tasks regardless of the range.
func ViewStats(ctx context.Context, store db.TaskStore, logger *zap.Logger, memberID, rangeName string, now time.Time) (*StatsResult, error) {
	windowStart, windowEnd, err := stats.ResolveRange(rangeName, now)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetching member tasks",
		zap.String("member_id", memberID),
		zap.String("range", rangeName))

	rows, err := store.GetMemberTasks(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member tasks: %w", err)
	}

	tasks := make([]stats.TimedTask, len(rows))
	for i, row := range rows {
		tasks[i] = stats.TimedTask{
			TaskID:      row.ID,
			AssignedAt:  row.AssignedAt,
			CompletedAt: row.CompletedAt,
		}
	}

	result := &StatsResult{
		Range:      rangeName,
		Daily:      stats.AggregateDaily(tasks, windowStart, windowEnd, logger),
		Weekly:     stats.AggregateWeekly(tasks, windowStart, windowEnd, logger),
		TotalHours: stats.AggregateLifetime(tasks, logger),
	}

	logger.Debug("Stats computed",
		zap.String("member_id", memberID),
		zap.Int("days", len(result.Daily)),
		zap.Float64("total_hours", result.TotalHours))

	return result, nil
}
