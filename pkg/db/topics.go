package db

import (
	"context"
	"fmt"
)

// FindTopics retrieves topic records matching the filter, ordered by title then ID
func (d *DB) FindTopics(ctx context.Context, filter TopicFilter) ([]Topic, error) {
	query := d.database.WithContext(ctx).Model(&Topic{})
	if filter.PrayDay != nil {
		query = query.Where("pray_day = ?", *filter.PrayDay)
	}
	if len(filter.PrayMonthsIn) > 0 {
		query = query.Where("pray_months IN ?", monthFilterValues(filter.PrayMonthsIn))
	}

	var topics []Topic
	if err := query.Order("title").Order("id").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	return topics, nil
}

// UpdateTopic sets the rotation fields of a topic
func (d *DB) UpdateTopic(ctx context.Context, id string, update RotationUpdate) error {
	updates := rotationUpdates(update)
	if len(updates) == 0 {
		return nil
	}

	result := d.database.WithContext(ctx).Model(&Topic{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("topic %s: %w", id, ErrNotFound)
	}
	return nil
}

// InsertTopic inserts a new topic record
func (d *DB) InsertTopic(ctx context.Context, topic *Topic) error {
	if err := d.database.WithContext(ctx).Create(topic).Error; err != nil {
		return fmt.Errorf("failed to insert topic: %w", err)
	}
	return nil
}
