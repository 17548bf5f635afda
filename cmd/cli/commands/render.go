package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakechorley/prayer-diary/pkg/core/rotation"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
	colorBold  = "\033[1m"
)

// writeSelection renders one day's selection: people, a separator when both groups are present, then topics
func writeSelection(w io.Writer, selection *rotation.Selection, indent string) {
	if selection.Empty() {
		fmt.Fprintf(w, "%s%s(nothing scheduled)%s\n", indent, colorDim, colorReset)
		return
	}

	for _, item := range selection.Items() {
		switch item.Kind {
		case rotation.ItemPerson:
			fmt.Fprintf(w, "%s%s\n", indent, item.Person.DisplayName)
			if points := strings.TrimSpace(item.Person.PrayerPoints); points != "" {
				fmt.Fprintf(w, "%s  %s%s%s\n", indent, colorDim, points, colorReset)
			}
		case rotation.ItemSeparator:
			fmt.Fprintf(w, "%s%s\n", indent, strings.Repeat("-", 20))
		case rotation.ItemTopic:
			fmt.Fprintf(w, "%s%s%s%s\n", indent, colorBold, item.Topic.Title, colorReset)
			if body := strings.TrimSpace(item.Topic.Body); body != "" {
				fmt.Fprintf(w, "%s  %s%s%s\n", indent, colorDim, body, colorReset)
			}
		}
	}
}

// writeAssignments renders the unassigned group then the assigned group
func writeAssignments(w io.Writer, assignments *rotation.Assignments) {
	fmt.Fprintf(w, "\nUnassigned (%d):\n", len(assignments.Unassigned))
	for _, e := range assignments.Unassigned {
		fmt.Fprintf(w, "  %-30s %s\n", e.Name, e.ID)
	}

	fmt.Fprintf(w, "\nAssigned (%d):\n", len(assignments.Assigned))
	fmt.Fprintf(w, "  %-4s  %-6s  %-30s  %s\n", "Day", "Months", "Name", "ID")
	for _, e := range assignments.Assigned {
		name := e.Name
		if !e.Visible {
			name += " (hidden)"
		}
		fmt.Fprintf(w, "  %-4d  %-6s  %-30s  %s\n", e.PrayDay, e.PrayMonths, name, e.ID)
	}
	fmt.Fprintln(w)
}

// writeDayCounts renders one line per day 1-31, including empty days
func writeDayCounts(w io.Writer, counts map[int]int) {
	total := 0
	for _, count := range counts {
		total += count
	}

	fmt.Fprintln(w)
	for day := rotation.MinDay; day <= rotation.MaxDay; day++ {
		count := counts[day]
		bar := strings.Repeat("#", count)
		if count == 0 {
			fmt.Fprintf(w, "  %2d  %s0%s\n", day, colorDim, colorReset)
			continue
		}
		fmt.Fprintf(w, "  %2d  %d %s\n", day, count, bar)
	}
	fmt.Fprintf(w, "\nTotal assigned: %d across %d day(s)\n\n", total, len(counts))
}
