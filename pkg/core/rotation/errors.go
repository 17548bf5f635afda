package rotation

import (
	"errors"
	"fmt"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
)

const (
	MinDay = 1
	MaxDay = 31
)

var (
	ErrInvalidDay         = errors.New("invalid day")
	ErrInvalidMonthFilter = errors.New("invalid month filter")
	ErrPermissionDenied   = errors.New("permission denied: calendar editor capability required")
	ErrStoreUnavailable   = errors.New("record store unavailable")
)

// ValidateDay rejects any day outside 1-31
func ValidateDay(day int) error {
	if day < MinDay || day > MaxDay {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidDay, day, MinDay, MaxDay)
	}
	return nil
}

func ValidateMonthFilter(f model.MonthFilter) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidMonthFilter, int(f))
	}
	return nil
}
