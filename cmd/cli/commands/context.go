package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/internal/config"
	"github.com/dulbrich/wardclean/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
}
