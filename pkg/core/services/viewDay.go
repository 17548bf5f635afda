package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/prayer-diary/pkg/core/rotation"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// ViewDay returns the people and topics to pray for on date.
// date is a read-time parameter only (today, or a preview date chosen by an editor);
// nothing is written.
func ViewDay(
	ctx context.Context,
	database db.RotationStore,
	logger *zap.Logger,
	date time.Time,
) (*rotation.Selection, error) {
	logger.Debug("Selecting prayer subjects", zap.String("date", date.Format("2006-01-02")))

	peopleFilter, topicFilter := dateFilters(date)

	people, err := database.FindPeople(ctx, peopleFilter)
	if err != nil {
		return nil, storeError("fetch people", err)
	}

	topics, err := database.FindTopics(ctx, topicFilter)
	if err != nil {
		return nil, storeError("fetch topics", err)
	}

	selection := rotation.Select(date, db.PeopleToModel(people), db.TopicsToModel(topics))

	logger.Debug("Prayer subjects selected",
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("people", len(selection.People)),
		zap.Int("topics", len(selection.Topics)))

	return selection, nil
}
