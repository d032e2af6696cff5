package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/cmd/cli/commands"
	"github.com/dulbrich/wardclean/internal/config"
	"github.com/dulbrich/wardclean/pkg/postgres"
	"github.com/dulbrich/wardclean/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wardclean",
		Short: "Ward Clean - Coordinate volunteer building cleaning",
		Long:  `A tool for coordinating volunteer cleaning of a ward building: generate Saturday schedules, track hours, award points, and remind the assigned group.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Database != nil {
					app.Database.Close()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment label used for log files")

	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.GenerateScheduleCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.LeaderboardCmd(app))
	rootCmd.AddCommand(commands.SendRemindersCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration and database connection
func initApp(ctx context.Context) error {
	var err error

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application", zap.String("environment", env))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded successfully")

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connected", zap.String("location_id", cfg.LocationID))

	app.Cfg = cfg
	app.Database = database
	app.Logger = logger
	app.Ctx = ctx

	return nil
}
