package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/services"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <member_id>",
		Short: "Show a member's cleaning hours for a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeName, _ := cmd.Flags().GetString("range")

			app.Logger.Debug("stats command",
				zap.String("member_id", args[0]),
				zap.String("range", rangeName))

			result, err := services.ViewStats(app.Ctx, app.Database, app.Logger, args[0], rangeName, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("\nHours for member %s (%s)\n\n", args[0], result.Range)
			for _, bucket := range result.Daily {
				marker := ""
				if bucket.TaskCount > 0 {
					marker = fmt.Sprintf("  (%d tasks)", bucket.TaskCount)
				}
				fmt.Printf("  %s  %5.1fh%s\n", bucket.Date, bucket.Hours, marker)
			}
			fmt.Printf("\nLifetime total: %.1fh\n\n", result.TotalHours)

			return nil
		},
	}

	cmd.Flags().String("range", "week", "Range to report: week, month, year or all")

	return cmd
}
