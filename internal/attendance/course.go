package attendance

import (
	"errors"
	"fmt"
	"strings"
)

// Threshold is the minimum fraction of classes a student must attend.
const Threshold = 0.75

// ThresholdPercent is Threshold expressed as a whole percentage.
const ThresholdPercent = 75

// ErrInvalidCourse is returned when a course record violates its invariants.
var ErrInvalidCourse = errors.New("invalid course")

// Course is a single course with its class counts.
type Course struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	TotalClasses    int    `json:"total_classes"`
	AttendedClasses int    `json:"attended_classes"`
}

// HasData reports whether any classes have been held for the course.
func (c Course) HasData() bool {
	return c.TotalClasses > 0
}

// Validate checks 0 <= attended <= total and a non-empty name.
func (c Course) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: course %d has no name", ErrInvalidCourse, c.ID)
	case c.TotalClasses < 0:
		return fmt.Errorf("%w: %s has negative total classes (%d)", ErrInvalidCourse, c.Name, c.TotalClasses)
	case c.AttendedClasses < 0:
		return fmt.Errorf("%w: %s has negative attended classes (%d)", ErrInvalidCourse, c.Name, c.AttendedClasses)
	case c.AttendedClasses > c.TotalClasses:
		return fmt.Errorf("%w: %s attended %d of %d classes", ErrInvalidCourse, c.Name, c.AttendedClasses, c.TotalClasses)
	}
	return nil
}

// Record returns the course after one more held class.
func (c Course) Record(present bool) Course {
	c.TotalClasses++
	if present {
		c.AttendedClasses++
	}
	return c
}

// Percent returns the course attendance as a whole percentage, rounded half-up.
// A course with no classes yet reports 0.
func Percent(c Course) int {
	return roundPercent(c.AttendedClasses, c.TotalClasses)
}

// Overall returns round(100 * sum(attended) / sum(total)) across all courses,
// or 0 when no classes have been held.
func Overall(courses []Course) int {
	var attended, total int
	for _, c := range courses {
		attended += c.AttendedClasses
		total += c.TotalClasses
	}
	return roundPercent(attended, total)
}

// Missable returns how many further classes could be skipped while staying at
// or above the threshold: max(0, floor(attended - 0.75*total)).
//
// The denominator is not grown as classes are missed, so this is a lower-bound
// heuristic rather than a simulation.
func Missable(total, attended int) int {
	if total <= 0 {
		return 0
	}
	// 4*(attended - 0.75*total) keeps the arithmetic in integers.
	d := 4*attended - 3*total
	if d <= 0 {
		return 0
	}
	return d / 4
}

// Needed returns how many consecutive attended classes bring the course back
// to the threshold: the smallest n with (attended+n)/(total+n) >= 0.75.
func Needed(total, attended int) int {
	n := 3*total - 4*attended
	if n < 0 {
		return 0
	}
	return n
}

// roundPercent computes round-half-up(100*num/den) clamped to [0, 100].
func roundPercent(num, den int) int {
	if den <= 0 || num <= 0 {
		return 0
	}
	p := (200*num + den) / (2 * den)
	if p > 100 {
		return 100
	}
	return p
}
