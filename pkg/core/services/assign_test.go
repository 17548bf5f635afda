package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/core/rotation"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

func TestAssignToDay_Person(t *testing.T) {
	store := &mockStore{
		people: []db.Person{
			approvedPerson("p1", "Alice", 0, model.MonthsOdd),
			approvedPerson("p2", "Bob", 15, model.MonthsAll),
		},
	}
	checker := &mockChecker{allowed: true}

	result, err := AssignToDay(context.Background(), store, checker, zap.NewNop(), model.KindPerson, "p1", 15)

	require.NoError(t, err)
	assert.Equal(t, 15, store.people[0].PrayDay)
	assert.Equal(t, int(model.MonthsOdd), store.people[0].PrayMonths, "month filter must be untouched")
	assert.Equal(t, &AssignResult{Kind: model.KindPerson, ID: "p1", Day: 15, DayCount: 2}, result)
}

func TestAssignToDay_Topic(t *testing.T) {
	store := &mockStore{
		topics: []db.Topic{{ID: "t1", Title: "Missions", PrayDay: 4, PrayMonths: int(model.MonthsEven)}},
	}

	result, err := AssignToDay(context.Background(), store, &mockChecker{allowed: true}, zap.NewNop(), model.KindTopic, "t1", 1)

	require.NoError(t, err)
	assert.Equal(t, 1, store.topics[0].PrayDay)
	assert.Equal(t, int(model.MonthsEven), store.topics[0].PrayMonths)
	assert.Equal(t, 1, result.DayCount)
}

func TestAssignToDay_InvalidDayRejectedBeforeAnyWrite(t *testing.T) {
	for _, day := range []int{0, -3, 32} {
		store := &mockStore{people: []db.Person{approvedPerson("p1", "Alice", 5, model.MonthsAll)}}
		checker := &mockChecker{allowed: true}

		_, err := AssignToDay(context.Background(), store, checker, zap.NewNop(), model.KindPerson, "p1", day)

		require.Error(t, err)
		assert.ErrorIs(t, err, rotation.ErrInvalidDay)
		assert.Equal(t, 0, store.updates)
		assert.Equal(t, 0, checker.calls)
		assert.Equal(t, 5, store.people[0].PrayDay)
	}
}

func TestAssignToDay_PermissionDenied(t *testing.T) {
	store := &mockStore{people: []db.Person{approvedPerson("p1", "Alice", 5, model.MonthsAll)}}

	_, err := AssignToDay(context.Background(), store, &mockChecker{allowed: false}, zap.NewNop(), model.KindPerson, "p1", 9)

	assert.ErrorIs(t, err, rotation.ErrPermissionDenied)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, 5, store.people[0].PrayDay)
}

func TestAssignToDay_PermissionCheckError(t *testing.T) {
	store := &mockStore{}

	_, err := AssignToDay(context.Background(), store, &mockChecker{err: errors.New("lookup failed")}, zap.NewNop(), model.KindPerson, "p1", 9)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check calendar editor permission")
	assert.Equal(t, 0, store.updates)
}

func TestAssignToDay_NotFound(t *testing.T) {
	store := &mockStore{}

	_, err := AssignToDay(context.Background(), store, &mockChecker{allowed: true}, zap.NewNop(), model.KindTopic, "missing", 9)

	assert.ErrorIs(t, err, db.ErrNotFound)
	assert.False(t, errors.Is(err, rotation.ErrStoreUnavailable))
}

func TestAssignToDay_StoreUnavailable(t *testing.T) {
	store := &mockStore{updateErr: errConnectionRefused}

	_, err := AssignToDay(context.Background(), store, &mockChecker{allowed: true}, zap.NewNop(), model.KindPerson, "p1", 9)

	assert.ErrorIs(t, err, rotation.ErrStoreUnavailable)
	assert.ErrorIs(t, err, errConnectionRefused)
}

func TestAssignToDay_UnknownKind(t *testing.T) {
	store := &mockStore{}

	_, err := AssignToDay(context.Background(), store, &mockChecker{allowed: true}, zap.NewNop(), model.EntityKind("group"), "x", 9)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity kind")
}

func TestSetMonthFilter(t *testing.T) {
	store := &mockStore{people: []db.Person{approvedPerson("p1", "Alice", 15, model.MonthsAll)}}

	err := SetMonthFilter(context.Background(), store, &mockChecker{allowed: true}, zap.NewNop(), model.KindPerson, "p1", model.MonthsEven)

	require.NoError(t, err)
	assert.Equal(t, int(model.MonthsEven), store.people[0].PrayMonths)
	assert.Equal(t, 15, store.people[0].PrayDay, "day must be untouched")
}

func TestSetMonthFilter_Invalid(t *testing.T) {
	store := &mockStore{people: []db.Person{approvedPerson("p1", "Alice", 15, model.MonthsAll)}}
	checker := &mockChecker{allowed: true}

	err := SetMonthFilter(context.Background(), store, checker, zap.NewNop(), model.KindPerson, "p1", model.MonthFilter(7))

	assert.ErrorIs(t, err, rotation.ErrInvalidMonthFilter)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, 0, checker.calls)
}

func TestSetMonthFilter_PermissionDenied(t *testing.T) {
	store := &mockStore{topics: []db.Topic{{ID: "t1", Title: "Youth", PrayMonths: int(model.MonthsAll)}}}

	err := SetMonthFilter(context.Background(), store, &mockChecker{}, zap.NewNop(), model.KindTopic, "t1", model.MonthsOdd)

	assert.ErrorIs(t, err, rotation.ErrPermissionDenied)
	assert.Equal(t, int(model.MonthsAll), store.topics[0].PrayMonths)
}

func TestListAssignments_People(t *testing.T) {
	hidden := approvedPerson("p3", "Cara", 0, model.MonthsAll)
	hidden.VisibleInCalendar = false
	pending := approvedPerson("p4", "Dave", 2, model.MonthsAll)
	pending.ApprovalState = string(model.ApprovalPending)

	store := &mockStore{
		people: []db.Person{
			approvedPerson("p1", "Alice", 12, model.MonthsAll),
			approvedPerson("p2", "Bob", 3, model.MonthsAll),
			hidden,
			pending,
		},
	}

	result, err := ListAssignments(context.Background(), store, zap.NewNop(), model.KindPerson, "")

	require.NoError(t, err)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "Cara", result.Unassigned[0].Name)
	require.Len(t, result.Assigned, 2)
	assert.Equal(t, "Bob", result.Assigned[0].Name)
	assert.Equal(t, "Alice", result.Assigned[1].Name)
}

func TestListAssignments_TopicsFiltered(t *testing.T) {
	store := &mockStore{
		topics: []db.Topic{
			{ID: "t1", Title: "Youth group", PrayDay: 0},
			{ID: "t2", Title: "Young families", PrayDay: 6},
			{ID: "t3", Title: "Missions", PrayDay: 1},
		},
	}

	result, err := ListAssignments(context.Background(), store, zap.NewNop(), model.KindTopic, "you")

	require.NoError(t, err)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "t1", result.Unassigned[0].ID)
	require.Len(t, result.Assigned, 1)
	assert.Equal(t, "t2", result.Assigned[0].ID)
}

func TestListAssignments_StoreUnavailable(t *testing.T) {
	store := &mockStore{findErr: errConnectionRefused}

	_, err := ListAssignments(context.Background(), store, zap.NewNop(), model.KindTopic, "")

	assert.ErrorIs(t, err, rotation.ErrStoreUnavailable)
}

func TestCountByDay_ThreeOnDayTen(t *testing.T) {
	hidden := approvedPerson("p5", "Eve", 10, model.MonthsAll)
	hidden.VisibleInCalendar = false

	store := &mockStore{
		people: []db.Person{
			approvedPerson("p1", "Alice", 10, model.MonthsAll),
			approvedPerson("p2", "Bob", 10, model.MonthsOdd),
			approvedPerson("p3", "Cara", 10, model.MonthsEven),
			approvedPerson("p4", "Dan", 0, model.MonthsAll),
			hidden,
		},
	}

	counts, err := CountByDay(context.Background(), store, zap.NewNop(), model.KindPerson)

	require.NoError(t, err)
	assert.Equal(t, map[int]int{10: 3}, counts)
}

func TestCountByDay_Topics(t *testing.T) {
	store := &mockStore{
		topics: []db.Topic{
			{ID: "t1", Title: "A", PrayDay: 1},
			{ID: "t2", Title: "B", PrayDay: 1},
			{ID: "t3", Title: "C", PrayDay: 31},
			{ID: "t4", Title: "D", PrayDay: 0},
		},
	}

	counts, err := CountByDay(context.Background(), store, zap.NewNop(), model.KindTopic)

	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 31: 1}, counts)
}
