package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechorley/prayer-diary/pkg/core/services"
)

// ViewDayCmd creates the viewDay command
func ViewDayCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewDay",
		Short: "Show who and what to pray for today (or on --date)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dateArg, _ := cmd.Flags().GetString("date")

			date := app.Cfg.Today()
			if dateArg != "" {
				parsed, err := parseDate(dateArg, app.Cfg.Location())
				if err != nil {
					return err
				}
				date = parsed
			}

			selection, err := services.ViewDay(app.Ctx, app.Database, app.Logger, date)
			if err != nil {
				return fmt.Errorf("failed to view day: %w", err)
			}

			fmt.Printf("\n🙏 %s\n\n", selection.Date.Format("Monday 2 January 2006"))
			writeSelection(os.Stdout, selection, "  ")
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("date", "", "Date to preview (YYYY-MM-DD, default today)")

	return cmd
}
