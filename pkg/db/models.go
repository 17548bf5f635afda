package db

import "github.com/jakechorley/prayer-diary/pkg/core/model"

// Person represents a database person (profile) record
type Person struct {
	ID                string `gorm:"column:id;primaryKey"`
	DisplayName       string `gorm:"column:display_name;not null"`
	PrayerPoints      string `gorm:"column:prayer_points"`
	ImageRef          string `gorm:"column:image_ref"`
	PrayDay           int    `gorm:"column:pray_day;not null;index"`
	PrayMonths        int    `gorm:"column:pray_months;not null"`
	VisibleInCalendar bool   `gorm:"column:visible_in_calendar;not null"`
	ApprovalState     string `gorm:"column:approval_state;not null"`
}

func (Person) TableName() string {
	return "person"
}

// Topic represents a database topic record
type Topic struct {
	ID         string `gorm:"column:id;primaryKey"`
	Title      string `gorm:"column:title;not null"`
	Body       string `gorm:"column:body"`
	ImageRef   string `gorm:"column:image_ref"`
	PrayDay    int    `gorm:"column:pray_day;not null;index"`
	PrayMonths int    `gorm:"column:pray_months;not null"`
}

func (Topic) TableName() string {
	return "topic"
}

func (p Person) ToModel() model.Person {
	return model.Person{
		ID:                p.ID,
		DisplayName:       p.DisplayName,
		PrayerPoints:      p.PrayerPoints,
		ImageRef:          p.ImageRef,
		PrayDay:           p.PrayDay,
		PrayMonths:        model.MonthFilter(p.PrayMonths),
		VisibleInCalendar: p.VisibleInCalendar,
		ApprovalState:     model.ApprovalState(p.ApprovalState),
	}
}

func (t Topic) ToModel() model.Topic {
	return model.Topic{
		ID:         t.ID,
		Title:      t.Title,
		Body:       t.Body,
		ImageRef:   t.ImageRef,
		PrayDay:    t.PrayDay,
		PrayMonths: model.MonthFilter(t.PrayMonths),
	}
}

// PeopleToModel converts a slice of person records
func PeopleToModel(records []Person) []model.Person {
	people := make([]model.Person, len(records))
	for i, r := range records {
		people[i] = r.ToModel()
	}
	return people
}

// TopicsToModel converts a slice of topic records
func TopicsToModel(records []Topic) []model.Topic {
	topics := make([]model.Topic, len(records))
	for i, r := range records {
		topics[i] = r.ToModel()
	}
	return topics
}
