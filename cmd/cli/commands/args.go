package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
)

const dateLayout = "2006-01-02"

func parseKind(arg string) (model.EntityKind, error) {
	return model.ParseEntityKind(arg)
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("day must be a number: %w", err)
	}
	return day, nil
}

// parseDate parses a YYYY-MM-DD date as midnight in loc
func parseDate(arg string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, arg, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

// parseDateRange parses <from> <to> arguments
func parseDateRange(args []string, loc *time.Location) (time.Time, time.Time, error) {
	from, err := parseDate(args[0], loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
	}
	to, err := parseDate(args[1], loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
	}
	return from, to, nil
}
