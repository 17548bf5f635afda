package auth

import (
	"context"
	"strings"
)

// PermissionChecker reports whether the current caller may change rotation assignments
type PermissionChecker interface {
	HasCalendarEditorPermission(ctx context.Context) (bool, error)
}

// EditorList grants the calendar editor capability to a fixed set of identities
type EditorList struct {
	caller  string
	editors map[string]bool
}

// NewEditorList creates a checker for caller against the configured editor identities.
// Identities are compared case-insensitively after trimming whitespace.
func NewEditorList(caller string, editors []string) *EditorList {
	set := make(map[string]bool, len(editors))
	for _, e := range editors {
		if n := normalise(e); n != "" {
			set[n] = true
		}
	}
	return &EditorList{
		caller:  normalise(caller),
		editors: set,
	}
}

// Caller returns the normalised caller identity
func (l *EditorList) Caller() string {
	return l.caller
}

func (l *EditorList) HasCalendarEditorPermission(ctx context.Context) (bool, error) {
	if l.caller == "" {
		return false, nil
	}
	return l.editors[l.caller], nil
}

func normalise(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}
