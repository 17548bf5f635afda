package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

var _ db.Database = (*DB)(nil)

func TestPeopleWhere_AllFilters(t *testing.T) {
	state := model.ApprovalApproved
	visible := true
	day := 15

	b := peopleWhere(db.PeopleFilter{
		ApprovalState:     &state,
		VisibleInCalendar: &visible,
		PrayDay:           &day,
		PrayMonthsIn:      []model.MonthFilter{model.MonthsAll, model.MonthsOdd},
	})

	assert.Equal(t,
		" WHERE approval_state = $1 AND visible_in_calendar = $2 AND pray_day = $3 AND pray_months = ANY($4)",
		b.where())
	assert.Equal(t, []any{"Approved", true, 15, []int32{0, 1}}, b.args)
}

func TestPeopleWhere_NoFilters(t *testing.T) {
	b := peopleWhere(db.PeopleFilter{})
	assert.Equal(t, "", b.where())
	assert.Empty(t, b.args)
}

func TestTopicWhere(t *testing.T) {
	day := 1
	b := topicWhere(db.TopicFilter{PrayDay: &day, PrayMonthsIn: []model.MonthFilter{model.MonthsEven}})
	assert.Equal(t, " WHERE pray_day = $1 AND pray_months = ANY($2)", b.where())
	assert.Equal(t, []any{1, []int32{2}}, b.args)
}

func TestRotationSet(t *testing.T) {
	day := 9
	months := model.MonthsOdd

	b := rotationSet(db.RotationUpdate{PrayDay: &day, PrayMonths: &months})
	assert.Equal(t, "pray_day = $1, pray_months = $2", b.set())
	assert.Equal(t, []any{9, 1}, b.args)

	onlyMonths := rotationSet(db.RotationUpdate{PrayMonths: &months})
	assert.Equal(t, "pray_months = $1", onlyMonths.set())
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_second.sql": {Data: []byte("SELECT 2;")},
		"migrations/001_first.sql":  {Data: []byte("SELECT 1;")},
		"migrations/README.md":      {Data: []byte("notes")},
		"migrations/003_third.sql":  {Data: []byte("SELECT 3;")},
	}

	pending, err := pendingMigrations(fsys, map[string]bool{"002_second.sql": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.sql", "003_third.sql"}, pending)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	pending, err := pendingMigrations(migrationsFS, map[string]bool{})
	require.NoError(t, err)
	assert.Contains(t, pending, "001_create_person_topic.sql")
}
