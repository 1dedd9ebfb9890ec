package commands

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env      string
	Cfg      *config.Config
	Catalog  *shifts.Catalog
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	sheetsOnce   sync.Once
	sheetsClient *sheetsclient.Client
	sheetsErr    error
}

// SheetsClient returns the Google Sheets client, running the OAuth flow on first use.
// Only publishing and sheet wish imports need it.
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	app.sheetsOnce.Do(func() {
		app.Logger.Info("Loading OAuth client configuration")
		oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
		if err != nil {
			app.sheetsErr = fmt.Errorf("failed to load OAuth client config: %w", err)
			return
		}

		app.Logger.Info("Initializing sheets client")
		app.sheetsClient, err = sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
		if err != nil {
			app.sheetsErr = fmt.Errorf("failed to create sheets client: %w", err)
		}
	})
	return app.sheetsClient, app.sheetsErr
}
