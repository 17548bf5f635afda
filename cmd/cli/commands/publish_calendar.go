package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/core/services"
)

// PublishCalendarCmd creates the publishCalendar command
func PublishCalendarCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishCalendar <from> <to>",
		Short: "Publish the prayer calendar for a date range to Google Sheets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(args, app.Cfg.Location())
			if err != nil {
				return err
			}

			app.Logger.Debug("publishCalendar command", zap.Time("from", from), zap.Time("to", to))

			if app.Cfg.CalendarSheetID == "" {
				return fmt.Errorf("calendarSheetID is not configured")
			}

			publisher, err := app.Publisher()
			if err != nil {
				return err
			}

			result, err := services.PublishCalendar(app.Ctx, app.Database, publisher, app.Cfg, app.Logger, from, to)
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Calendar Published Successfully\n\n")
			fmt.Printf("Sheet ID: %s\n", result.SheetID)
			fmt.Printf("Tab:      %s\n\n", result.TabTitle)

			fmt.Printf("%-15s  %-8s  %-8s\n", "Date", "People", "Topics")
			fmt.Println("---------------  --------  --------")
			for _, row := range result.Calendar.Rows {
				fmt.Printf("%-15s  %-8d  %-8d\n", row.Date, len(row.People), len(row.Topics))
			}
			fmt.Println()

			return nil
		},
	}
}
