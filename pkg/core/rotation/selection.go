package rotation

import (
	"slices"
	"time"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
)

// ItemKind identifies an element of a rendered selection
type ItemKind string

const (
	ItemPerson    ItemKind = "person"
	ItemTopic     ItemKind = "topic"
	ItemSeparator ItemKind = "separator"
)

// Item is one rendered element of a daily selection
type Item struct {
	Kind   ItemKind
	Person *model.Person // Set when Kind == ItemPerson
	Topic  *model.Topic  // Set when Kind == ItemTopic
}

// Selection is the set of people and topics shown for a single date
type Selection struct {
	Date   time.Time
	People []model.Person // Sorted by display name
	Topics []model.Topic  // Sorted by title
}

// Empty reports whether nothing is scheduled for the date
func (s *Selection) Empty() bool {
	return len(s.People) == 0 && len(s.Topics) == 0
}

// HasSeparator reports whether a separator is rendered between people and topics
func (s *Selection) HasSeparator() bool {
	return len(s.People) > 0 && len(s.Topics) > 0
}

// Items returns people then topics, with a separator between the groups when both are present
func (s *Selection) Items() []Item {
	items := make([]Item, 0, len(s.People)+len(s.Topics)+1)
	for i := range s.People {
		items = append(items, Item{Kind: ItemPerson, Person: &s.People[i]})
	}
	if s.HasSeparator() {
		items = append(items, Item{Kind: ItemSeparator})
	}
	for i := range s.Topics {
		items = append(items, Item{Kind: ItemTopic, Topic: &s.Topics[i]})
	}
	return items
}

// PersonScheduled reports whether a person is shown on the given date
func PersonScheduled(p model.Person, date time.Time) bool {
	return p.ApprovalState == model.ApprovalApproved &&
		p.VisibleInCalendar &&
		p.PrayDay == date.Day() &&
		p.PrayMonths.Matches(date.Month())
}

// TopicScheduled reports whether a topic is shown on the given date
func TopicScheduled(t model.Topic, date time.Time) bool {
	return t.PrayDay == date.Day() && t.PrayMonths.Matches(date.Month())
}

// Select computes the selection for a date from candidate people and topics.
// Candidates that are not scheduled for the date are dropped; the inputs are not modified.
// A pray_day that does not exist in the date's month can never equal date.Day(),
// so such assignments are skipped for that month.
func Select(date time.Time, people []model.Person, topics []model.Topic) *Selection {
	sel := &Selection{
		Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		People: []model.Person{},
		Topics: []model.Topic{},
	}

	for _, p := range people {
		if PersonScheduled(p, date) {
			sel.People = append(sel.People, p)
		}
	}
	for _, t := range topics {
		if TopicScheduled(t, date) {
			sel.Topics = append(sel.Topics, t)
		}
	}

	slices.SortFunc(sel.People, func(a, b model.Person) int {
		return compareNames(a.DisplayName, a.ID, b.DisplayName, b.ID)
	})
	slices.SortFunc(sel.Topics, func(a, b model.Topic) int {
		return compareNames(a.Title, a.ID, b.Title, b.ID)
	})

	return sel
}
