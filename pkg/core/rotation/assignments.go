package rotation

import (
	"slices"
	"strings"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
)

// Entry is the rotation view of a person or topic
type Entry struct {
	Kind       model.EntityKind
	ID         string
	Name       string // Display name for people, title for topics
	PrayDay    int
	PrayMonths model.MonthFilter
	Visible    bool // Always true for topics
}

// Assignments holds entries partitioned by whether they have a day
type Assignments struct {
	Unassigned []Entry // Sorted by name
	Assigned   []Entry // Sorted by day, then name
}

// EntriesFromPeople converts people to rotation entries
func EntriesFromPeople(people []model.Person) []Entry {
	entries := make([]Entry, len(people))
	for i, p := range people {
		entries[i] = Entry{
			Kind:       model.KindPerson,
			ID:         p.ID,
			Name:       p.DisplayName,
			PrayDay:    p.PrayDay,
			PrayMonths: p.PrayMonths,
			Visible:    p.VisibleInCalendar,
		}
	}
	return entries
}

// EntriesFromTopics converts topics to rotation entries
func EntriesFromTopics(topics []model.Topic) []Entry {
	entries := make([]Entry, len(topics))
	for i, t := range topics {
		entries[i] = Entry{
			Kind:       model.KindTopic,
			ID:         t.ID,
			Name:       t.Title,
			PrayDay:    t.PrayDay,
			PrayMonths: t.PrayMonths,
			Visible:    true,
		}
	}
	return entries
}

// ListAssignments narrows entries by a case-insensitive name substring (if given)
// and splits them into unassigned and assigned groups.
func ListAssignments(entries []Entry, filterText string) Assignments {
	needle := strings.ToLower(strings.TrimSpace(filterText))

	result := Assignments{
		Unassigned: []Entry{},
		Assigned:   []Entry{},
	}
	for _, e := range entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		if e.PrayDay == 0 {
			result.Unassigned = append(result.Unassigned, e)
		} else {
			result.Assigned = append(result.Assigned, e)
		}
	}

	slices.SortFunc(result.Unassigned, compareEntryNames)
	slices.SortFunc(result.Assigned, func(a, b Entry) int {
		if a.PrayDay != b.PrayDay {
			return a.PrayDay - b.PrayDay
		}
		return compareEntryNames(a, b)
	})

	return result
}

// CountByDay counts entries per assigned day. Unassigned entries are not counted.
func CountByDay(entries []Entry) map[int]int {
	counts := make(map[int]int)
	for _, e := range entries {
		if e.PrayDay < MinDay || e.PrayDay > MaxDay {
			continue
		}
		counts[e.PrayDay]++
	}
	return counts
}

func compareEntryNames(a, b Entry) int {
	return compareNames(a.Name, a.ID, b.Name, b.ID)
}

// compareNames orders by name (case-insensitive, then exact) and falls back to ID
// so that equal names still sort the same way on every call.
func compareNames(nameA, idA, nameB, idB string) int {
	if c := strings.Compare(strings.ToLower(nameA), strings.ToLower(nameB)); c != 0 {
		return c
	}
	if c := strings.Compare(nameA, nameB); c != 0 {
		return c
	}
	return strings.Compare(idA, idB)
}
