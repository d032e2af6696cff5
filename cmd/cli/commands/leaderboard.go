package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dulbrich/wardclean/pkg/core/services"
)

// LeaderboardCmd creates the leaderboard command
func LeaderboardCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show members ranked by points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			rows, err := services.Leaderboard(app.Ctx, app.Database, app.Logger, limit)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("\nNo points awarded yet.")
				return nil
			}

			fmt.Println()
			for _, row := range rows {
				name := row.DisplayName
				if name == "" {
					name = row.MemberID
				}
				fmt.Printf("  %3d. %-30s %d points\n", row.Rank, name, row.Points)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("limit", 10, "Maximum rows to show (0 for all)")

	return cmd
}
