package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/cmd/cli/commands"
	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/db"
	"github.com/jakechorley/ward-roster/pkg/postgres"
	"github.com/jakechorley/ward-roster/pkg/utils/logging"
)

var (
	env  string
	app  = &commands.AppContext{Ctx: context.Background()}
	pgDB *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Ward roster CLI - generate and report monthly staff rosters",
		Long: `A CLI tool for generating monthly hospital shift rosters from staff capabilities,
absences and wishes, and for reporting on the rosters produced.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pgDB != nil {
				pgDB.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateRosterCmd(app))
	rootCmd.AddCommand(commands.ViewStatisticsCmd(app))
	rootCmd.AddCommand(commands.StaffCalendarCmd(app))
	rootCmd.AddCommand(commands.ImportStaffCmd(app))
	rootCmd.AddCommand(commands.ImportAbsencesCmd(app))
	rootCmd.AddCommand(commands.ImportWishesCmd(app))
	rootCmd.AddCommand(commands.PublishRosterCmd(app))
	rootCmd.AddCommand(commands.ExportRosterCmd(app))
	rootCmd.AddCommand(commands.ListShiftsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and the roster store
func initApp() error {
	var err error
	app.Env = env

	// A missing .env is fine; DATABASE_URL may already be set
	_ = godotenv.Load()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("storage", app.Cfg.Storage))

	app.Catalog = shifts.DefaultCatalog()

	switch app.Cfg.Storage {
	case config.StoragePostgres:
		app.Logger.Info("Connecting to PostgreSQL")
		pgDB, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pgDB.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = pgDB
	default:
		app.Logger.Info("Using file store", zap.String("data_dir", app.Cfg.DataDir))
		fileDB, err := db.NewFileDB(app.Cfg.DataDir)
		if err != nil {
			return err
		}
		app.Database = fileDB
	}

	app.Logger.Debug("Store initialized")
	return nil
}
