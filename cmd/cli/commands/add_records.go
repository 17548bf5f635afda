package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/core/services"
)

// AddPersonCmd creates the addPerson command
func AddPersonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addPerson <name>",
		Short: "Add a person with no prayer day assigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, _ := cmd.Flags().GetString("points")
			approval, _ := cmd.Flags().GetString("approval")
			hidden, _ := cmd.Flags().GetBool("hidden")

			state, err := model.ParseApprovalState(approval)
			if err != nil {
				return err
			}

			person, err := services.AddPerson(app.Ctx, app.Database, app.Checker, app.Logger, services.NewPerson{
				DisplayName:       args[0],
				PrayerPoints:      points,
				ApprovalState:     state,
				VisibleInCalendar: !hidden,
			})
			if err != nil {
				return fmt.Errorf("failed to add person: %w", err)
			}

			fmt.Printf("\n✅ Added %s\n\n", person.DisplayName)
			fmt.Printf("ID:       %s\n", person.ID)
			fmt.Printf("Approval: %s\n", person.ApprovalState)
			fmt.Printf("Visible:  %t\n\n", person.VisibleInCalendar)

			return nil
		},
	}

	cmd.Flags().String("points", "", "Prayer points")
	cmd.Flags().String("approval", string(model.ApprovalPending), "Approval state (Pending, Approved, Rejected, EmailOnly)")
	cmd.Flags().Bool("hidden", false, "Hide the person from the calendar")

	return cmd
}

// AddTopicCmd creates the addTopic command
func AddTopicCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addTopic <title>",
		Short: "Add a prayer topic with no prayer day assigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _ := cmd.Flags().GetString("body")

			topic, err := services.AddTopic(app.Ctx, app.Database, app.Checker, app.Logger, services.NewTopic{
				Title: args[0],
				Body:  body,
			})
			if err != nil {
				return fmt.Errorf("failed to add topic: %w", err)
			}

			fmt.Printf("\n✅ Added topic %s\n\nID: %s\n\n", topic.Title, topic.ID)
			return nil
		},
	}

	cmd.Flags().String("body", "", "Topic description")

	return cmd
}
