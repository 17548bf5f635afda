package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/auth"
	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/core/rotation"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// AssignResult describes a completed day assignment
type AssignResult struct {
	Kind     model.EntityKind
	ID       string
	Day      int
	DayCount int // Entities of the same kind now assigned to Day
}

// AssignToDay binds a person or topic to a day of the month.
// The day is validated before the permission check and before any write; the month filter is untouched.
func AssignToDay(
	ctx context.Context,
	database db.RotationStore,
	checker auth.PermissionChecker,
	logger *zap.Logger,
	kind model.EntityKind,
	id string,
	day int,
) (*AssignResult, error) {
	logger.Debug("Assigning to day", zap.String("kind", string(kind)), zap.String("id", id), zap.Int("day", day))

	if err := rotation.ValidateDay(day); err != nil {
		return nil, err
	}
	if err := requireEditor(ctx, checker); err != nil {
		return nil, err
	}

	update := db.RotationUpdate{PrayDay: &day}
	if err := updateEntity(ctx, database, kind, id, update); err != nil {
		return nil, err
	}

	count, err := countOnDay(ctx, database, kind, day)
	if err != nil {
		return nil, err
	}

	logger.Info("Assigned to day",
		zap.String("kind", string(kind)),
		zap.String("id", id),
		zap.Int("day", day),
		zap.Int("day_count", count))

	return &AssignResult{
		Kind:     kind,
		ID:       id,
		Day:      day,
		DayCount: count,
	}, nil
}

// SetMonthFilter sets whether a person or topic is shown every month or only odd/even months
func SetMonthFilter(
	ctx context.Context,
	database db.RotationStore,
	checker auth.PermissionChecker,
	logger *zap.Logger,
	kind model.EntityKind,
	id string,
	filter model.MonthFilter,
) error {
	logger.Debug("Setting month filter", zap.String("kind", string(kind)), zap.String("id", id), zap.Stringer("months", filter))

	if err := rotation.ValidateMonthFilter(filter); err != nil {
		return err
	}
	if err := requireEditor(ctx, checker); err != nil {
		return err
	}

	update := db.RotationUpdate{PrayMonths: &filter}
	if err := updateEntity(ctx, database, kind, id, update); err != nil {
		return err
	}

	logger.Info("Month filter set", zap.String("kind", string(kind)), zap.String("id", id), zap.Stringer("months", filter))
	return nil
}

// ListAssignments lists approved people (hidden ones included) or all topics,
// split into unassigned and assigned groups
func ListAssignments(
	ctx context.Context,
	database db.RotationStore,
	logger *zap.Logger,
	kind model.EntityKind,
	filterText string,
) (*rotation.Assignments, error) {
	logger.Debug("Listing assignments", zap.String("kind", string(kind)), zap.String("filter", filterText))

	var entries []rotation.Entry
	switch kind {
	case model.KindPerson:
		approved := model.ApprovalApproved
		records, err := database.FindPeople(ctx, db.PeopleFilter{ApprovalState: &approved})
		if err != nil {
			return nil, storeError("fetch people", err)
		}
		entries = rotation.EntriesFromPeople(db.PeopleToModel(records))
	case model.KindTopic:
		records, err := database.FindTopics(ctx, db.TopicFilter{})
		if err != nil {
			return nil, storeError("fetch topics", err)
		}
		entries = rotation.EntriesFromTopics(db.TopicsToModel(records))
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}

	assignments := rotation.ListAssignments(entries, filterText)

	logger.Debug("Assignments listed",
		zap.Int("unassigned", len(assignments.Unassigned)),
		zap.Int("assigned", len(assignments.Assigned)))

	return &assignments, nil
}

// CountByDay returns how many entities are assigned to each day; people count only when approved and visible
func CountByDay(
	ctx context.Context,
	database db.RotationStore,
	logger *zap.Logger,
	kind model.EntityKind,
) (map[int]int, error) {
	var entries []rotation.Entry
	switch kind {
	case model.KindPerson:
		records, err := database.FindPeople(ctx, approvedVisiblePeople())
		if err != nil {
			return nil, storeError("fetch people", err)
		}
		entries = rotation.EntriesFromPeople(db.PeopleToModel(records))
	case model.KindTopic:
		records, err := database.FindTopics(ctx, db.TopicFilter{})
		if err != nil {
			return nil, storeError("fetch topics", err)
		}
		entries = rotation.EntriesFromTopics(db.TopicsToModel(records))
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}

	counts := rotation.CountByDay(entries)
	logger.Debug("Counted assignments by day", zap.String("kind", string(kind)), zap.Int("days", len(counts)))

	return counts, nil
}

func requireEditor(ctx context.Context, checker auth.PermissionChecker) error {
	ok, err := checker.HasCalendarEditorPermission(ctx)
	if err != nil {
		return fmt.Errorf("failed to check calendar editor permission: %w", err)
	}
	if !ok {
		return rotation.ErrPermissionDenied
	}
	return nil
}

func updateEntity(ctx context.Context, database db.RotationStore, kind model.EntityKind, id string, update db.RotationUpdate) error {
	switch kind {
	case model.KindPerson:
		if err := database.UpdatePerson(ctx, id, update); err != nil {
			return storeError("update person", err)
		}
	case model.KindTopic:
		if err := database.UpdateTopic(ctx, id, update); err != nil {
			return storeError("update topic", err)
		}
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}
	return nil
}

func countOnDay(ctx context.Context, database db.RotationStore, kind model.EntityKind, day int) (int, error) {
	if kind == model.KindTopic {
		topics, err := database.FindTopics(ctx, db.TopicFilter{PrayDay: &day})
		if err != nil {
			return 0, storeError("count topics", err)
		}
		return len(topics), nil
	}

	filter := approvedVisiblePeople()
	filter.PrayDay = &day
	people, err := database.FindPeople(ctx, filter)
	if err != nil {
		return 0, storeError("count people", err)
	}
	return len(people), nil
}
