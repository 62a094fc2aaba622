package attendance

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for events.
const DateLayout = "2006-01-02"

// ErrInvalidEvent is returned when an event record is malformed.
var ErrInvalidEvent = errors.New("invalid event")

// Category classifies an upcoming event.
type Category string

const (
	CategoryTest       Category = "test"
	CategoryAssignment Category = "assignment"
	CategoryFee        Category = "fee"
	CategoryOther      Category = "other"
)

// ParseCategory maps a free-form string to a Category. Unknown values map to
// CategoryOther.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryTest:
		return CategoryTest
	case CategoryAssignment:
		return CategoryAssignment
	case CategoryFee:
		return CategoryFee
	default:
		return CategoryOther
	}
}

// DisplayName returns a human-readable label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryTest:
		return "Test"
	case CategoryAssignment:
		return "Assignment"
	case CategoryFee:
		return "Fee"
	default:
		return "Other"
	}
}

// Event is an upcoming academic event.
type Event struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Date     string   `json:"date"`
	Category Category `json:"type"`
}

// Validate checks for a name and a YYYY-MM-DD date.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: event %d has no name", ErrInvalidEvent, e.ID)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %s has date %q, want YYYY-MM-DD", ErrInvalidEvent, e.Name, e.Date)
	}
	return nil
}

// Time parses the event date. The zero time is returned for malformed dates.
func (e Event) Time() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortByDate returns a copy of events ordered by date, then ID.
func SortByDate(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].ID < out[j].ID
		}
		return out[i].Date < out[j].Date
	})
	return out
}
