package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/internal/config"
	"github.com/dulbrich/wardclean/pkg/clients/mailclient"
	"github.com/dulbrich/wardclean/pkg/core/services"
)

// SendRemindersCmd creates the sendReminders command. The Gmail client is
// built here rather than at startup so the OAuth flow only runs for this
// command.
func SendRemindersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sendReminders",
		Short: "Email the assigned group about upcoming cleaning dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			daysAhead, _ := cmd.Flags().GetInt("days")
			if daysAhead == 0 {
				daysAhead = app.Cfg.ReminderDaysAhead
			}

			oauthCfg, err := config.LoadOAuthClient()
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			mailClient, err := mailclient.NewClient(app.Ctx, oauthCfg, app.Cfg.GmailUserID, app.Cfg.GmailSender)
			if err != nil {
				return fmt.Errorf("failed to create gmail client: %w", err)
			}

			app.Logger.Debug("sendReminders command", zap.Int("days_ahead", daysAhead))

			result, err := services.SendReminders(
				app.Ctx,
				app.Database,
				mailClient,
				app.Logger,
				app.Cfg.LocationID,
				daysAhead,
				time.Now(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\nReminders sent: %d\n", result.Sent)
			if len(result.Failures) > 0 {
				fmt.Printf("Failed to send %d reminders:\n", len(result.Failures))
				for _, failure := range result.Failures {
					fmt.Printf("  %s: %s\n", failure.Email, failure.Error)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("days", 0, "Days ahead to look for cleaning dates (defaults to configured value)")

	return cmd
}
