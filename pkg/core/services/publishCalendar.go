package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/internal/config"
	"github.com/jakechorley/prayer-diary/pkg/clients/sheetsclient"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// CalendarPublisher writes a built calendar to an external spreadsheet
type CalendarPublisher interface {
	PublishCalendar(spreadsheetID string, calendar *sheetsclient.PublishedCalendar) (string, error)
}

// PublishResult describes a published calendar
type PublishResult struct {
	SheetID  string
	TabTitle string
	Calendar *sheetsclient.PublishedCalendar
}

// PublishCalendar builds one row per date from..to (inclusive) and writes them to the configured calendar sheet
func PublishCalendar(
	ctx context.Context,
	database db.RotationStore,
	publisher CalendarPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	from, to time.Time,
) (*PublishResult, error) {
	if cfg.CalendarSheetID == "" {
		return nil, fmt.Errorf("calendarSheetID is not configured")
	}

	days, err := selectRange(ctx, database, logger, from, to)
	if err != nil {
		return nil, err
	}

	calendar := &sheetsclient.PublishedCalendar{
		From: days[0].Date,
		To:   days[len(days)-1].Date,
		Rows: make([]sheetsclient.PublishedCalendarRow, len(days)),
	}

	for i, day := range days {
		people := make([]string, len(day.Selection.People))
		for j, p := range day.Selection.People {
			people[j] = p.DisplayName
		}
		topics := make([]string, len(day.Selection.Topics))
		for j, t := range day.Selection.Topics {
			topics[j] = t.Title
		}

		calendar.Rows[i] = sheetsclient.PublishedCalendarRow{
			Date:   sheetsclient.FormatDate(day.Date),
			People: people,
			Topics: topics,
		}
	}

	logger.Debug("Publishing calendar", zap.String("sheet_id", cfg.CalendarSheetID), zap.Int("rows", len(calendar.Rows)))

	tabTitle, err := publisher.PublishCalendar(cfg.CalendarSheetID, calendar)
	if err != nil {
		return nil, fmt.Errorf("failed to publish calendar: %w", err)
	}

	logger.Info("Calendar published",
		zap.String("sheet_id", cfg.CalendarSheetID),
		zap.String("tab", tabTitle),
		zap.Int("rows", len(calendar.Rows)))

	return &PublishResult{
		SheetID:  cfg.CalendarSheetID,
		TabTitle: tabTitle,
		Calendar: calendar,
	}, nil
}
