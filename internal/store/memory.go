package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/oasys/internal/attendance"
)

// memoryRepo serves a fixed data set. Writes fail with ErrReadOnly.
type memoryRepo struct {
	courses []attendance.Course
	events  []attendance.Event
}

// NewMemory returns a read-only Repo over the given data.
func NewMemory(courses []attendance.Course, events []attendance.Event) Repo {
	m := &memoryRepo{
		courses: append([]attendance.Course(nil), courses...),
		events:  append([]attendance.Event(nil), events...),
	}
	sort.Slice(m.courses, func(i, j int) bool { return m.courses[i].ID < m.courses[j].ID })
	sort.Slice(m.events, func(i, j int) bool { return m.events[i].ID < m.events[j].ID })
	return m
}

// NewSeed returns a read-only Repo over the built-in demonstration data.
func NewSeed() Repo {
	return NewMemory(attendance.SeedCourses(), attendance.SeedEvents())
}

func (m *memoryRepo) Courses(context.Context) ([]attendance.Course, error) {
	return append([]attendance.Course(nil), m.courses...), nil
}

func (m *memoryRepo) Course(_ context.Context, id int) (attendance.Course, error) {
	for _, c := range m.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return attendance.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
}

func (m *memoryRepo) SaveCourse(context.Context, attendance.Course) error {
	return ErrReadOnly
}

func (m *memoryRepo) Events(context.Context) ([]attendance.Event, error) {
	return append([]attendance.Event(nil), m.events...), nil
}

func (m *memoryRepo) SaveEvent(context.Context, attendance.Event) error {
	return ErrReadOnly
}

func (m *memoryRepo) Close() error {
	return nil
}
