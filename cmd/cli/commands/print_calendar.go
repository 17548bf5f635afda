package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/prayer-diary/pkg/core/services"
)

// PrintCalendarCmd creates the printCalendar command
func PrintCalendarCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "printCalendar <from> <to>",
		Short: "Print the prayer calendar for a date range (YYYY-MM-DD, inclusive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(args, app.Cfg.Location())
			if err != nil {
				return err
			}

			calendar, err := services.PrintCalendar(app.Ctx, app.Database, app.Logger, from, to, app.Cfg.Print.DaysPerPage)
			if err != nil {
				return fmt.Errorf("failed to print calendar: %w", err)
			}

			writeCalendar(os.Stdout, calendar)
			return nil
		},
	}
}

func writeCalendar(w io.Writer, calendar *services.PrintableCalendar) {
	for _, page := range calendar.Pages {
		fmt.Fprintf(w, "\n%s Page %d of %d %s\n", strings.Repeat("=", 12), page.Number, len(calendar.Pages), strings.Repeat("=", 12))
		for _, day := range page.Days {
			fmt.Fprintf(w, "\n%s\n", day.Heading)
			writeSelection(w, day.Selection, "  ")
		}
	}
	fmt.Fprintln(w)
}
