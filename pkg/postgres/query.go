package postgres

import (
	"fmt"
	"strings"

	"github.com/jakechorley/prayer-diary/pkg/core/model"
	"github.com/jakechorley/prayer-diary/pkg/db"
)

// clauseBuilder collects SQL fragments with numbered placeholders.
// Each fragment contains a single %d which is replaced by the argument's position.
type clauseBuilder struct {
	clauses []string
	args    []any
}

func (b *clauseBuilder) add(fragment string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(fragment, len(b.args)))
}

func (b *clauseBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

func (b *clauseBuilder) set() string {
	return strings.Join(b.clauses, ", ")
}

func monthValues(filters []model.MonthFilter) []int32 {
	values := make([]int32, len(filters))
	for i, f := range filters {
		values[i] = int32(f)
	}
	return values
}

func peopleWhere(filter db.PeopleFilter) *clauseBuilder {
	b := &clauseBuilder{}
	if filter.ApprovalState != nil {
		b.add("approval_state = $%d", string(*filter.ApprovalState))
	}
	if filter.VisibleInCalendar != nil {
		b.add("visible_in_calendar = $%d", *filter.VisibleInCalendar)
	}
	if filter.PrayDay != nil {
		b.add("pray_day = $%d", *filter.PrayDay)
	}
	if len(filter.PrayMonthsIn) > 0 {
		b.add("pray_months = ANY($%d)", monthValues(filter.PrayMonthsIn))
	}
	return b
}

func topicWhere(filter db.TopicFilter) *clauseBuilder {
	b := &clauseBuilder{}
	if filter.PrayDay != nil {
		b.add("pray_day = $%d", *filter.PrayDay)
	}
	if len(filter.PrayMonthsIn) > 0 {
		b.add("pray_months = ANY($%d)", monthValues(filter.PrayMonthsIn))
	}
	return b
}

func rotationSet(update db.RotationUpdate) *clauseBuilder {
	b := &clauseBuilder{}
	if update.PrayDay != nil {
		b.add("pray_day = $%d", *update.PrayDay)
	}
	if update.PrayMonths != nil {
		b.add("pray_months = $%d", int(*update.PrayMonths))
	}
	return b
}
