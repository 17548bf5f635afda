package services

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/jakechorley/prayer-diary/pkg/clients/sheetsclient"
	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// mockStore implements db.RotationStore and RecordCreator in memory
type mockStore struct {
	people []db.Person
	topics []db.Topic

	findErr   error
	updateErr error
	insertErr error

	updates    int
	findPeople int
	findTopics int
}

func (m *mockStore) FindPeople(ctx context.Context, filter db.PeopleFilter) ([]db.Person, error) {
	m.findPeople++
	if m.findErr != nil {
		return nil, m.findErr
	}

	var result []db.Person
	for _, p := range m.people {
		if filter.ApprovalState != nil && p.ApprovalState != string(*filter.ApprovalState) {
			continue
		}
		if filter.VisibleInCalendar != nil && p.VisibleInCalendar != *filter.VisibleInCalendar {
			continue
		}
		if filter.PrayDay != nil && p.PrayDay != *filter.PrayDay {
			continue
		}
		if len(filter.PrayMonthsIn) > 0 && !containsMonths(filter, p.PrayMonths) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].DisplayName) < strings.ToLower(result[j].DisplayName)
	})
	return result, nil
}

func (m *mockStore) FindTopics(ctx context.Context, filter db.TopicFilter) ([]db.Topic, error) {
	m.findTopics++
	if m.findErr != nil {
		return nil, m.findErr
	}

	var result []db.Topic
	for _, t := range m.topics {
		if filter.PrayDay != nil && t.PrayDay != *filter.PrayDay {
			continue
		}
		if len(filter.PrayMonthsIn) > 0 && !slices.ContainsFunc(filter.PrayMonthsIn, func(f model.MonthFilter) bool {
			return int(f) == t.PrayMonths
		}) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (m *mockStore) UpdatePerson(ctx context.Context, id string, update db.RotationUpdate) error {
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.people {
		if m.people[i].ID == id {
			if update.PrayDay != nil {
				m.people[i].PrayDay = *update.PrayDay
			}
			if update.PrayMonths != nil {
				m.people[i].PrayMonths = int(*update.PrayMonths)
			}
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *mockStore) UpdateTopic(ctx context.Context, id string, update db.RotationUpdate) error {
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.topics {
		if m.topics[i].ID == id {
			if update.PrayDay != nil {
				m.topics[i].PrayDay = *update.PrayDay
			}
			if update.PrayMonths != nil {
				m.topics[i].PrayMonths = int(*update.PrayMonths)
			}
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *mockStore) InsertPerson(ctx context.Context, person *db.Person) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.people = append(m.people, *person)
	return nil
}

func (m *mockStore) InsertTopic(ctx context.Context, topic *db.Topic) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.topics = append(m.topics, *topic)
	return nil
}

func containsMonths(filter db.PeopleFilter, months int) bool {
	return slices.ContainsFunc(filter.PrayMonthsIn, func(f model.MonthFilter) bool {
		return int(f) == months
	})
}

// mockChecker implements auth.PermissionChecker
type mockChecker struct {
	allowed bool
	err     error
	calls   int
}

func (m *mockChecker) HasCalendarEditorPermission(ctx context.Context) (bool, error) {
	m.calls++
	return m.allowed, m.err
}

// mockPublisher implements CalendarPublisher
type mockPublisher struct {
	spreadsheetID string
	calendar      *sheetsclient.PublishedCalendar
	err           error
}

func (m *mockPublisher) PublishCalendar(spreadsheetID string, calendar *sheetsclient.PublishedCalendar) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.spreadsheetID = spreadsheetID
	m.calendar = calendar
	return sheetsclient.TabTitle(calendar.From, calendar.To), nil
}

var errConnectionRefused = errors.New("connection refused")

func approvedPerson(id, name string, day int, months model.MonthFilter) db.Person {
	return db.Person{
		ID:                id,
		DisplayName:       name,
		PrayDay:           day,
		PrayMonths:        int(months),
		VisibleInCalendar: true,
		ApprovalState:     string(model.ApprovalApproved),
	}
}
