package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule <month> [month...]",
		Short: "Generate Saturday cleaning assignments for the given months",
		Long:  "Generate one schedule entry per Saturday for each YYYY-MM month, rotating groups A-D and assigning fifth Saturdays to everyone. Dates that already have an entry are skipped.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultTime, _ := cmd.Flags().GetString("time")
			if defaultTime == "" {
				defaultTime = app.Cfg.DefaultCleaningTime
			}

			app.Logger.Debug("generateSchedule command",
				zap.Strings("months", args),
				zap.String("time", defaultTime))

			result, err := services.GenerateSchedule(
				app.Ctx,
				app.Database,
				app.Logger,
				app.Cfg.LocationID,
				args,
				defaultTime,
				app.Cfg.ScheduleRule,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\nSchedule generated: %d created, %d skipped\n\n", result.Created, result.Skipped)
			for _, entry := range result.Entries {
				fmt.Printf("  %s %s  group %s\n", entry.Date, entry.Time, entry.AssignedGroup)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("time", "", "Cleaning time as HH:MM:SS (defaults to configured time)")

	return cmd
}
