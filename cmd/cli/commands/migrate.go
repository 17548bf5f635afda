package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrator is implemented by stores with versioned schema migrations
type migrator interface {
	RunMigrations(ctx context.Context) ([]string, error)
}

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := app.Database.(migrator)
			if !ok {
				// The embedded store migrates its schema when opened
				fmt.Println("\n✅ Schema is up to date")
				return nil
			}

			applied, err := m.RunMigrations(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			app.Logger.Info("Migrations applied", zap.Strings("files", applied))

			if len(applied) == 0 {
				fmt.Println("\n✅ Schema is up to date")
				return nil
			}

			fmt.Printf("\n✅ Applied %d migration(s):\n", len(applied))
			for _, filename := range applied {
				fmt.Printf("  - %s\n", filename)
			}
			fmt.Println()

			return nil
		},
	}
}
