package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/cmd/cli/commands"
	"github.com/jakechorley/prayer-diary/internal/config"
	"github.com/jakechorley/prayer-diary/pkg/auth"
	"github.com/jakechorley/prayer-diary/pkg/db"
	"github.com/jakechorley/prayer-diary/pkg/postgres"
	"github.com/jakechorley/prayer-diary/pkg/utils/logging"
)

var (
	env    string
	caller string
	app    = &commands.AppContext{Ctx: context.Background()}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Prayer Diary CLI - Manage the daily prayer rotation",
		Long:  `A CLI tool for assigning people and topics to days of the month and viewing, printing or publishing the daily prayer calendar.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				app.Database.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")
	rootCmd.PersistentFlags().StringVar(&caller, "as", "", "Identity of the person running the command (default $"+config.UserEnvVar+")")

	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.AddPersonCmd(app))
	rootCmd.AddCommand(commands.AddTopicCmd(app))
	rootCmd.AddCommand(commands.AssignDayCmd(app))
	rootCmd.AddCommand(commands.SetMonthsCmd(app))
	rootCmd.AddCommand(commands.ListAssignmentsCmd(app))
	rootCmd.AddCommand(commands.DayCountsCmd(app))
	rootCmd.AddCommand(commands.ViewDayCmd(app))
	rootCmd.AddCommand(commands.PrintCalendarCmd(app))
	rootCmd.AddCommand(commands.PublishCalendarCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads config, then sets up the logger, the record store and the permission checker
func initApp() error {
	var err error
	app.Env = env

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(env, app.Cfg.LogDir, app.Cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application",
		zap.String("environment", env),
		zap.String("driver", app.Cfg.Database.Driver),
		zap.String("timezone", app.Cfg.Timezone))

	app.Database, err = openDatabase(app.Ctx, app.Cfg, app.Logger)
	if err != nil {
		return err
	}

	identity := caller
	if identity == "" {
		identity = os.Getenv(config.UserEnvVar)
	}
	app.Checker = auth.NewEditorList(identity, app.Cfg.CalendarEditors)
	app.Logger.Debug("Caller identified", zap.String("caller", app.Checker.Caller()))

	return nil
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Database, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		logger.Info("Connecting to PostgreSQL")
		database, err := postgres.NewDB(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return database, nil
	case config.DriverSQLite:
		logger.Info("Opening SQLite database", zap.String("path", cfg.Database.Path))
		database, err := db.OpenSQLite(cfg.Database.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return database, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
