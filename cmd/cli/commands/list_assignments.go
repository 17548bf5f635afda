package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechorley/prayer-diary/pkg/core/services"
)

// ListAssignmentsCmd creates the listAssignments command
func ListAssignmentsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listAssignments <person|topic>",
		Short: "List people or topics grouped into unassigned and assigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			filter, _ := cmd.Flags().GetString("filter")

			assignments, err := services.ListAssignments(app.Ctx, app.Database, app.Logger, kind, filter)
			if err != nil {
				return fmt.Errorf("failed to list assignments: %w", err)
			}

			writeAssignments(os.Stdout, assignments)
			return nil
		},
	}

	cmd.Flags().String("filter", "", "Only show names containing this text (case-insensitive)")

	return cmd
}

// DayCountsCmd creates the dayCounts command
func DayCountsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dayCounts <person|topic>",
		Short: "Show how many people or topics are assigned to each day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			counts, err := services.CountByDay(app.Ctx, app.Database, app.Logger, kind)
			if err != nil {
				return fmt.Errorf("failed to count assignments: %w", err)
			}

			writeDayCounts(os.Stdout, counts)
			return nil
		},
	}
}
