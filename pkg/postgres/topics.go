package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/prayer-diary/pkg/db"
)

// FindTopics retrieves topic records matching the filter, ordered by title then ID
func (d *DB) FindTopics(ctx context.Context, filter db.TopicFilter) ([]db.Topic, error) {
	where := topicWhere(filter)
	rows, err := d.pool.Query(ctx, `
		SELECT id, title, body, image_ref, pray_day, pray_months
		FROM topic`+where.where()+`
		ORDER BY title, id
	`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []db.Topic
	for rows.Next() {
		var t db.Topic
		if err := rows.Scan(&t.ID, &t.Title, &t.Body, &t.ImageRef, &t.PrayDay, &t.PrayMonths); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topics: %w", err)
	}

	return topics, nil
}

// UpdateTopic sets the rotation fields of a topic
func (d *DB) UpdateTopic(ctx context.Context, id string, update db.RotationUpdate) error {
	set := rotationSet(update)
	if len(set.clauses) == 0 {
		return nil
	}
	set.args = append(set.args, id)

	tag, err := d.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE topic SET %s WHERE id = $%d`, set.set(), len(set.args)),
		set.args...)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// InsertTopic inserts a new topic record
func (d *DB) InsertTopic(ctx context.Context, t *db.Topic) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO topic (id, title, body, image_ref, pray_day, pray_months)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID, t.Title, t.Body, t.ImageRef, t.PrayDay, t.PrayMonths)
	if err != nil {
		return fmt.Errorf("failed to insert topic: %w", err)
	}
	return nil
}
