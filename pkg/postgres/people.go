package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/prayer-diary/pkg/db"
)

// FindPeople retrieves person records matching the filter, ordered by display name then ID
func (d *DB) FindPeople(ctx context.Context, filter db.PeopleFilter) ([]db.Person, error) {
	where := peopleWhere(filter)
	rows, err := d.pool.Query(ctx, `
		SELECT id, display_name, prayer_points, image_ref, pray_day, pray_months, visible_in_calendar, approval_state
		FROM person`+where.where()+`
		ORDER BY display_name, id
	`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []db.Person
	for rows.Next() {
		var p db.Person
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.PrayerPoints, &p.ImageRef, &p.PrayDay, &p.PrayMonths, &p.VisibleInCalendar, &p.ApprovalState); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	return people, nil
}

// UpdatePerson sets the rotation fields of a person
func (d *DB) UpdatePerson(ctx context.Context, id string, update db.RotationUpdate) error {
	set := rotationSet(update)
	if len(set.clauses) == 0 {
		return nil
	}
	set.args = append(set.args, id)

	tag, err := d.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE person SET %s WHERE id = $%d`, set.set(), len(set.args)),
		set.args...)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("person %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// InsertPerson inserts a new person record
func (d *DB) InsertPerson(ctx context.Context, p *db.Person) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO person (id, display_name, prayer_points, image_ref, pray_day, pray_months, visible_in_calendar, approval_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.DisplayName, p.PrayerPoints, p.ImageRef, p.PrayDay, p.PrayMonths, p.VisibleInCalendar, p.ApprovalState)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}
