package sheetsclient

import (
	"fmt"
	"strings"
	"time"
)

const sheetDateFormat = "Mon Jan 02 2006"

// PublishedCalendarRow is one date of the published calendar
type PublishedCalendarRow struct {
	Date   string   // Format: "Mon Jan 02 2006"
	People []string // Display names in selection order
	Topics []string // Titles in selection order
}

// PublishedCalendar is the full set of rows written to one tab
type PublishedCalendar struct {
	From time.Time
	To   time.Time
	Rows []PublishedCalendarRow
}

// PublishCalendar writes a calendar to a tab titled "Mon Jan 02 2006 - Mon Jan 02 2006".
// The tab is created if missing, otherwise its contents are replaced.
// Returns the tab title.
func (c *Client) PublishCalendar(spreadsheetID string, calendar *PublishedCalendar) (string, error) {
	tabTitle := TabTitle(calendar.From, calendar.To)

	exists, err := c.SheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return "", err
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("'%s'", tabTitle)); err != nil {
			return "", fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), calendarValues(calendar)); err != nil {
		return "", fmt.Errorf("failed to write calendar to tab: %w", err)
	}

	return tabTitle, nil
}

// TabTitle formats the tab title for a date range
func TabTitle(from, to time.Time) string {
	return fmt.Sprintf("%s - %s", from.Format(sheetDateFormat), to.Format(sheetDateFormat))
}

// FormatDate formats a date the way published rows show it
func FormatDate(date time.Time) string {
	return date.Format(sheetDateFormat)
}

// calendarValues builds the sheet rows: header then one row per date.
// Names within a cell are separated by new lines.
func calendarValues(calendar *PublishedCalendar) [][]interface{} {
	values := make([][]interface{}, 0, len(calendar.Rows)+1)
	values = append(values, []interface{}{"Date", "People", "Topics"})

	for _, row := range calendar.Rows {
		values = append(values, []interface{}{
			row.Date,
			strings.Join(row.People, "\n"),
			strings.Join(row.Topics, "\n"),
		})
	}

	return values
}
