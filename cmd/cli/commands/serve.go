package commands

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/api"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := api.NewServer(&api.Options{
				Cfg:    app.Cfg,
				Store:  app.Database,
				Logger: app.Logger,
			})

			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info("Starting HTTP server", zap.String("addr", app.Cfg.ListenAddr))
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("server failed: %w", err)
				}
			case <-ctx.Done():
				app.Logger.Info("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown failed: %w", err)
				}
			}

			return nil
		},
	}
}
