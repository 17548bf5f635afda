package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/auth"
	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// RecordCreator defines the database operations needed for adding people and topics
type RecordCreator interface {
	InsertPerson(ctx context.Context, person *db.Person) error
	InsertTopic(ctx context.Context, topic *db.Topic) error
}

// NewPerson holds the editable fields of a person being added
type NewPerson struct {
	DisplayName       string
	PrayerPoints      string
	ImageRef          string
	ApprovalState     model.ApprovalState
	VisibleInCalendar bool
}

// NewTopic holds the editable fields of a topic being added
type NewTopic struct {
	Title    string
	Body     string
	ImageRef string
}

// AddPerson stores a new person with no day assigned and the ALL month filter
func AddPerson(
	ctx context.Context,
	database RecordCreator,
	checker auth.PermissionChecker,
	logger *zap.Logger,
	input NewPerson,
) (*model.Person, error) {
	name := strings.TrimSpace(input.DisplayName)
	if name == "" {
		return nil, fmt.Errorf("display name is required")
	}

	state := input.ApprovalState
	if state == "" {
		state = model.ApprovalPending
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid approval state %q", state)
	}

	if err := requireEditor(ctx, checker); err != nil {
		return nil, err
	}

	record := &db.Person{
		ID:                uuid.New().String(),
		DisplayName:       name,
		PrayerPoints:      input.PrayerPoints,
		ImageRef:          input.ImageRef,
		PrayDay:           0,
		PrayMonths:        int(model.MonthsAll),
		VisibleInCalendar: input.VisibleInCalendar,
		ApprovalState:     string(state),
	}

	if err := database.InsertPerson(ctx, record); err != nil {
		return nil, storeError("insert person", err)
	}

	logger.Info("Person added",
		zap.String("id", record.ID),
		zap.String("name", record.DisplayName),
		zap.String("approval_state", record.ApprovalState),
		zap.Bool("visible", record.VisibleInCalendar))

	person := record.ToModel()
	return &person, nil
}

// AddTopic stores a new topic with no day assigned and the ALL month filter
func AddTopic(
	ctx context.Context,
	database RecordCreator,
	checker auth.PermissionChecker,
	logger *zap.Logger,
	input NewTopic,
) (*model.Topic, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if err := requireEditor(ctx, checker); err != nil {
		return nil, err
	}

	record := &db.Topic{
		ID:         uuid.New().String(),
		Title:      title,
		Body:       input.Body,
		ImageRef:   input.ImageRef,
		PrayDay:    0,
		PrayMonths: int(model.MonthsAll),
	}

	if err := database.InsertTopic(ctx, record); err != nil {
		return nil, storeError("insert topic", err)
	}

	logger.Info("Topic added", zap.String("id", record.ID), zap.String("title", record.Title))

	topic := record.ToModel()
	return &topic, nil
}
