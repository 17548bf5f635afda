package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/core/services"
)

// AssignDayCmd creates the assignDay command
func AssignDayCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignDay <person|topic> <id> <day>",
		Short: "Assign a person or topic to a day of the month (1-31)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			day, err := parseDay(args[2])
			if err != nil {
				return err
			}

			app.Logger.Debug("assignDay command", zap.String("kind", string(kind)), zap.String("id", args[1]), zap.Int("day", day))

			result, err := services.AssignToDay(app.Ctx, app.Database, app.Checker, app.Logger, kind, args[1], day)
			if err != nil {
				return fmt.Errorf("failed to assign day: %w", err)
			}

			fmt.Printf("\n✅ Assigned %s %s to day %d\n", result.Kind, result.ID, result.Day)
			fmt.Printf("%s on day %d: %d\n\n", plural(result.Kind), result.Day, result.DayCount)

			return nil
		},
	}
}

// SetMonthsCmd creates the setMonths command
func SetMonthsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setMonths <person|topic> <id> <all|odd|even>",
		Short: "Show a person or topic every month or only in odd/even months",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			filter, err := model.ParseMonthFilter(args[2])
			if err != nil {
				return err
			}

			if err := services.SetMonthFilter(app.Ctx, app.Database, app.Checker, app.Logger, kind, args[1], filter); err != nil {
				return fmt.Errorf("failed to set months: %w", err)
			}

			fmt.Printf("\n✅ %s %s now shown in %s months\n\n", kind, args[1], filter)
			return nil
		},
	}
}

func plural(kind model.EntityKind) string {
	if kind == model.KindPerson {
		return "People"
	}
	return "Topics"
}
