package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/oasys/internal/attendance"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReadOnly is returned when writing to a data source that cannot be
	// modified (built-in seed data or a JSON data file).
	ErrReadOnly = errors.New("data source is read-only")
)

// Repo provides access to courses and events.
type Repo interface {
	// Courses returns all courses ordered by ID.
	Courses(ctx context.Context) ([]attendance.Course, error)

	// Course returns one course, or ErrNotFound.
	Course(ctx context.Context, id int) (attendance.Course, error)

	// SaveCourse inserts or replaces a course.
	SaveCourse(ctx context.Context, c attendance.Course) error

	// Events returns all events ordered by ID.
	Events(ctx context.Context) ([]attendance.Event, error)

	// SaveEvent inserts or replaces an event.
	SaveEvent(ctx context.Context, e attendance.Event) error

	// Close releases the underlying connection.
	Close() error
}

// Seed writes the given courses and events when the repo holds no courses.
// It reports whether anything was written.
func Seed(ctx context.Context, r Repo, courses []attendance.Course, events []attendance.Event) (bool, error) {
	existing, err := r.Courses(ctx)
	if err != nil {
		return false, fmt.Errorf("check existing courses: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	if err := Import(ctx, r, courses, events); err != nil {
		return false, err
	}
	return true, nil
}

// Import validates and saves courses and events.
func Import(ctx context.Context, r Repo, courses []attendance.Course, events []attendance.Event) error {
	for _, c := range courses {
		if err := c.Validate(); err != nil {
			return err
		}
		if err := r.SaveCourse(ctx, c); err != nil {
			return fmt.Errorf("save course %d: %w", c.ID, err)
		}
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return err
		}
		if err := r.SaveEvent(ctx, e); err != nil {
			return fmt.Errorf("save event %d: %w", e.ID, err)
		}
	}
	return nil
}

// RecordAttendance adds one held class to a course.
func RecordAttendance(ctx context.Context, r Repo, courseID int, present bool) (attendance.Course, error) {
	c, err := r.Course(ctx, courseID)
	if err != nil {
		return attendance.Course{}, err
	}
	c = c.Record(present)
	if err := c.Validate(); err != nil {
		return attendance.Course{}, err
	}
	if err := r.SaveCourse(ctx, c); err != nil {
		return attendance.Course{}, fmt.Errorf("save course %d: %w", courseID, err)
	}
	return c, nil
}
