package db

import (
	"context"
	"fmt"
)

// FindPeople retrieves person records matching the filter, ordered by display name then ID
func (d *DB) FindPeople(ctx context.Context, filter PeopleFilter) ([]Person, error) {
	query := d.database.WithContext(ctx).Model(&Person{})
	if filter.ApprovalState != nil {
		query = query.Where("approval_state = ?", string(*filter.ApprovalState))
	}
	if filter.VisibleInCalendar != nil {
		query = query.Where("visible_in_calendar = ?", *filter.VisibleInCalendar)
	}
	if filter.PrayDay != nil {
		query = query.Where("pray_day = ?", *filter.PrayDay)
	}
	if len(filter.PrayMonthsIn) > 0 {
		query = query.Where("pray_months IN ?", monthFilterValues(filter.PrayMonthsIn))
	}

	var people []Person
	if err := query.Order("display_name").Order("id").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	return people, nil
}

// UpdatePerson sets the rotation fields of a person
func (d *DB) UpdatePerson(ctx context.Context, id string, update RotationUpdate) error {
	updates := rotationUpdates(update)
	if len(updates) == 0 {
		return nil
	}

	result := d.database.WithContext(ctx).Model(&Person{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	return nil
}

// InsertPerson inserts a new person record
func (d *DB) InsertPerson(ctx context.Context, person *Person) error {
	if err := d.database.WithContext(ctx).Create(person).Error; err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}
