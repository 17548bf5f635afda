package model

import (
	"fmt"
	"strings"
	"time"
)

// MonthFilter restricts which calendar months an assignment is shown in
type MonthFilter int

const (
	MonthsAll  MonthFilter = 0
	MonthsOdd  MonthFilter = 1
	MonthsEven MonthFilter = 2
)

func (f MonthFilter) IsValid() bool {
	return f == MonthsAll || f == MonthsOdd || f == MonthsEven
}

func (f MonthFilter) String() string {
	switch f {
	case MonthsAll:
		return "all"
	case MonthsOdd:
		return "odd"
	case MonthsEven:
		return "even"
	default:
		return fmt.Sprintf("MonthFilter(%d)", int(f))
	}
}

// Matches reports whether an assignment with this filter is shown in the given month
func (f MonthFilter) Matches(month time.Month) bool {
	odd := int(month)%2 == 1
	switch f {
	case MonthsAll:
		return true
	case MonthsOdd:
		return odd
	case MonthsEven:
		return !odd
	default:
		return false
	}
}

// ParseMonthFilter parses "all", "odd" or "even" (case-insensitive)
func ParseMonthFilter(s string) (MonthFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return MonthsAll, nil
	case "odd":
		return MonthsOdd, nil
	case "even":
		return MonthsEven, nil
	}
	return 0, fmt.Errorf("invalid month filter %q (expected all, odd or even)", s)
}

// ParityFilter returns the non-ALL filter that matches the given month
func ParityFilter(month time.Month) MonthFilter {
	if int(month)%2 == 1 {
		return MonthsOdd
	}
	return MonthsEven
}

type ApprovalState string

const (
	ApprovalPending   ApprovalState = "Pending"
	ApprovalApproved  ApprovalState = "Approved"
	ApprovalRejected  ApprovalState = "Rejected"
	ApprovalEmailOnly ApprovalState = "EmailOnly"
)

func (s ApprovalState) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalEmailOnly:
		return true
	}
	return false
}

// ParseApprovalState matches an approval state name case-insensitively
func ParseApprovalState(s string) (ApprovalState, error) {
	for _, state := range []ApprovalState{ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalEmailOnly} {
		if strings.EqualFold(strings.TrimSpace(s), string(state)) {
			return state, nil
		}
	}
	return "", fmt.Errorf("invalid approval state %q", s)
}

// EntityKind distinguishes the two kinds of prayer subject
type EntityKind string

const (
	KindPerson EntityKind = "person"
	KindTopic  EntityKind = "topic"
)

func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindPerson:
		return KindPerson, nil
	case KindTopic:
		return KindTopic, nil
	}
	return "", fmt.Errorf("invalid kind %q (expected person or topic)", s)
}

// Person is the part of a member profile that takes part in the rotation
type Person struct {
	ID                string
	DisplayName       string
	PrayerPoints      string
	ImageRef          string // Empty if no image
	PrayDay           int    // 0 = unassigned
	PrayMonths        MonthFilter
	VisibleInCalendar bool
	ApprovalState     ApprovalState
}

// Topic is a non-person prayer subject curated by editors
type Topic struct {
	ID         string
	Title      string
	Body       string
	ImageRef   string
	PrayDay    int
	PrayMonths MonthFilter
}
