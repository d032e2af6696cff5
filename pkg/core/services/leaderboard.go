package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/db"
)

// LeaderboardRow is one ranked leaderboard entry. Members with equal points
// share a rank.
type LeaderboardRow struct {
	Rank        int    `json:"rank"`
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	Points      int    `json:"points"`
}

// Leaderboard returns members ranked by total points, highest first, limited
// to the top limit rows (0 means no limit).
func Leaderboard(ctx context.Context, store db.PointsStore, logger *zap.Logger, limit int) ([]LeaderboardRow, error) {
	totals, err := store.GetPointsTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch points totals: %w", err)
	}

	rows := make([]LeaderboardRow, 0, len(totals))
	rank := 0
	lastPoints := -1
	for i, total := range totals {
		if total.Points != lastPoints {
			rank = i + 1
			lastPoints = total.Points
		}
		rows = append(rows, LeaderboardRow{
			Rank:        rank,
			MemberID:    total.MemberID,
			DisplayName: total.DisplayName,
			Points:      total.Points,
		})
		if limit > 0 && len(rows) == limit {
			break
		}
	}

	logger.Debug("Leaderboard computed", zap.Int("rows", len(rows)))
	return rows, nil
}
