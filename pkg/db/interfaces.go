package db

import (
	"context"
	"errors"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
)

// ErrNotFound is returned by updates that match no record
var ErrNotFound = errors.New("record not found")

// PeopleFilter narrows a people query. Nil / empty fields are not filtered on.
type PeopleFilter struct {
	ApprovalState     *model.ApprovalState
	VisibleInCalendar *bool
	PrayDay           *int
	PrayMonthsIn      []model.MonthFilter
}

// TopicFilter narrows a topic query. Nil / empty fields are not filtered on.
type TopicFilter struct {
	PrayDay      *int
	PrayMonthsIn []model.MonthFilter
}

// RotationUpdate changes the rotation fields of a record. Nil fields are left untouched.
type RotationUpdate struct {
	PrayDay    *int
	PrayMonths *model.MonthFilter
}

// RotationStore defines the reads and writes the rotation engine needs
type RotationStore interface {
	FindPeople(ctx context.Context, filter PeopleFilter) ([]Person, error)
	FindTopics(ctx context.Context, filter TopicFilter) ([]Topic, error)
	UpdatePerson(ctx context.Context, id string, update RotationUpdate) error
	UpdateTopic(ctx context.Context, id string, update RotationUpdate) error
}

// Database defines the interface for all database operations.
// Both the SQLite-backed db.DB and postgres.DB implement this interface.
type Database interface {
	RotationStore
	InsertPerson(ctx context.Context, person *Person) error
	InsertTopic(ctx context.Context, topic *Topic) error
	Close() error
}

func monthFilterValues(filters []model.MonthFilter) []int {
	values := make([]int, len(filters))
	for i, f := range filters {
		values[i] = int(f)
	}
	return values
}
