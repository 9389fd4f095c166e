package models

import "fmt"

// FilterMode selects which open tasks the home view lists.
type FilterMode string

const (
	// FilterOverdue lists open tasks due before today.
	FilterOverdue FilterMode = "overdue"
	// FilterUpcoming lists open tasks due today or later.
	FilterUpcoming FilterMode = "upcoming"
	// FilterInbox lists open tasks without a due date.
	FilterInbox FilterMode = "inbox"
)

// DefaultFilterMode applies to users that never picked a filter.
const DefaultFilterMode = FilterInbox

// FilterModes enumerates the supported modes in display order.
var FilterModes = []FilterMode{FilterOverdue, FilterUpcoming, FilterInbox}

// Valid reports whether m is one of FilterModes.
func (m FilterMode) Valid() bool {
	for _, v := range FilterModes {
		if m == v {
			return true
		}
	}
	return false
}

// Label is the capitalised display name of the mode.
func (m FilterMode) Label() string {
	switch m {
	case FilterOverdue:
		return "Overdue"
	case FilterUpcoming:
		return "Upcoming"
	case FilterInbox:
		return "Inbox"
	}
	return string(m)
}

// ParseFilterMode validates a raw mode value.
func ParseFilterMode(raw string) (FilterMode, error) {
	m := FilterMode(raw)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return m, nil
}
