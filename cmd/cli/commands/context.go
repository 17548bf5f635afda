package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/internal/config"
	"github.com/jakechorley/prayer-diary/pkg/auth"
	"github.com/jakechorley/prayer-diary/pkg/clients/sheetsclient"
	"github.com/jakechorley/prayer-diary/pkg/core/services"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env      string
	Cfg      *config.Config
	Database db.Database
	Checker  *auth.EditorList
	Logger   *zap.Logger
	Ctx      context.Context

	publisher services.CalendarPublisher
}

// Publisher returns the Google Sheets publisher, running the OAuth flow on first use
func (app *AppContext) Publisher() (services.CalendarPublisher, error) {
	if app.publisher != nil {
		return app.publisher, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.publisher = client
	return client, nil
}
