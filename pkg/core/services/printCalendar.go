package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/core/rotation"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// maxCalendarDays caps a printable calendar at one (leap) year
const maxCalendarDays = 366

// CalendarDay is one dated entry of a printable calendar
type CalendarDay struct {
	Date      time.Time
	Heading   string // Format: "Friday 15 March 2024"
	Selection *rotation.Selection
}

// CalendarPage groups consecutive days for printing
type CalendarPage struct {
	Number int // 1-based
	Days   []CalendarDay
}

// PrintableCalendar is the daily selection for every date in a range, paginated
type PrintableCalendar struct {
	From  time.Time
	To    time.Time
	Pages []CalendarPage
}

// PrintCalendar builds the daily selection for each date from..to (inclusive) and
// splits the days into pages of daysPerPage
func PrintCalendar(
	ctx context.Context,
	database db.RotationStore,
	logger *zap.Logger,
	from, to time.Time,
	daysPerPage int,
) (*PrintableCalendar, error) {
	if daysPerPage < 1 {
		return nil, fmt.Errorf("days per page must be positive, got %d", daysPerPage)
	}

	days, err := selectRange(ctx, database, logger, from, to)
	if err != nil {
		return nil, err
	}

	pages := make([]CalendarPage, 0, (len(days)+daysPerPage-1)/daysPerPage)
	for start := 0; start < len(days); start += daysPerPage {
		end := min(start+daysPerPage, len(days))
		pages = append(pages, CalendarPage{
			Number: len(pages) + 1,
			Days:   days[start:end],
		})
	}

	logger.Info("Printable calendar built",
		zap.String("from", days[0].Date.Format("2006-01-02")),
		zap.String("to", days[len(days)-1].Date.Format("2006-01-02")),
		zap.Int("days", len(days)),
		zap.Int("pages", len(pages)))

	return &PrintableCalendar{
		From:  days[0].Date,
		To:    days[len(days)-1].Date,
		Pages: pages,
	}, nil
}

// selectRange runs the daily selection over every date in [from, to].
// Candidates are fetched once and filtered per date by rotation.Select.
func selectRange(
	ctx context.Context,
	database db.RotationStore,
	logger *zap.Logger,
	from, to time.Time,
) ([]CalendarDay, error) {
	dates, err := calendarDates(from, to)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetching rotation candidates", zap.Int("dates", len(dates)))

	peopleRecords, err := database.FindPeople(ctx, approvedVisiblePeople())
	if err != nil {
		return nil, storeError("fetch people", err)
	}
	topicRecords, err := database.FindTopics(ctx, db.TopicFilter{})
	if err != nil {
		return nil, storeError("fetch topics", err)
	}

	people := db.PeopleToModel(peopleRecords)
	topics := db.TopicsToModel(topicRecords)

	days := make([]CalendarDay, len(dates))
	for i, date := range dates {
		days[i] = CalendarDay{
			Date:      date,
			Heading:   date.Format("Monday 2 January 2006"),
			Selection: rotation.Select(date, people, topics),
		}
	}

	return days, nil
}

// calendarDates lists each calendar day from from to to inclusive using a daily recurrence
func calendarDates(from, to time.Time) ([]time.Time, error) {
	start := startOfDay(from)
	end := startOfDay(to.In(from.Location()))

	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if !end.Before(start.AddDate(0, 0, maxCalendarDays)) {
		return nil, fmt.Errorf("date range exceeds %d days", maxCalendarDays)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Until:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build daily rule: %w", err)
	}

	return rule.All(), nil
}
