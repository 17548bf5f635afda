package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/core/rotation"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// storeError marks err as a record store failure while keeping it in the chain.
// A missing record is reported as-is since the store itself answered.
func storeError(action string, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", action, rotation.ErrStoreUnavailable, err)
}

func approvedVisiblePeople() db.PeopleFilter {
	approved := model.ApprovalApproved
	visible := true
	return db.PeopleFilter{
		ApprovalState:     &approved,
		VisibleInCalendar: &visible,
	}
}

// dateFilters returns the store filters matching everything scheduled on date
func dateFilters(date time.Time) (db.PeopleFilter, db.TopicFilter) {
	day := date.Day()
	months := []model.MonthFilter{model.MonthsAll, model.ParityFilter(date.Month())}

	people := approvedVisiblePeople()
	people.PrayDay = &day
	people.PrayMonthsIn = months

	return people, db.TopicFilter{PrayDay: &day, PrayMonthsIn: months}
}

// startOfDay truncates t to midnight in its own location
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
