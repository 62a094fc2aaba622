package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"entgo.io/ent"

	"github.com/abhisek/oasys/ent/schema"
	"github.com/abhisek/oasys/internal/attendance"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestFileStoreReopen.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEmptyStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	courses, err := s.Courses(ctx)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected no courses, got %d", len(courses))
	}

	_, err = s.Course(ctx, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Course(1) error = %v, want ErrNotFound", err)
	}
}

func TestSeedOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seeded, err := Seed(ctx, s, attendance.SeedCourses(), attendance.SeedEvents())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !seeded {
		t.Fatal("expected first seed to write data")
	}

	seeded, err = Seed(ctx, s, attendance.SeedCourses(), attendance.SeedEvents())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if seeded {
		t.Fatal("expected second seed to be a no-op")
	}

	courses, err := s.Courses(ctx)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(courses) != 4 {
		t.Fatalf("courses = %d, want 4", len(courses))
	}
	if courses[0].Name != "Mathematics" || courses[0].TotalClasses != 50 || courses[0].AttendedClasses != 40 {
		t.Errorf("unexpected first course: %+v", courses[0])
	}
	if got := attendance.Overall(courses); got != 82 {
		t.Errorf("overall = %d, want 82", got)
	}

	events, err := s.Events(ctx)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("events = %d, want 5", len(events))
	}
	if events[2].Category != attendance.CategoryFee {
		t.Errorf("event 3 category = %q, want fee", events[2].Category)
	}
}

func TestSaveCourseUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c := attendance.Course{ID: 7, Name: "Biology", TotalClasses: 10, AttendedClasses: 9}
	if err := s.SaveCourse(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	c.AttendedClasses = 8
	if err := s.SaveCourse(ctx, c); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := s.Course(ctx, 7)
	if err != nil {
		t.Fatalf("course: %v", err)
	}
	if got != c {
		t.Errorf("course = %+v, want %+v", got, c)
	}

	courses, _ := s.Courses(ctx)
	if len(courses) != 1 {
		t.Errorf("courses = %d, want 1 after upsert", len(courses))
	}
}

func TestRecordAttendance(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if _, err := Seed(ctx, s, attendance.SeedCourses(), nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, err := RecordAttendance(ctx, s, 4, false)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if c.TotalClasses != 41 || c.AttendedClasses != 30 {
		t.Errorf("English = %d/%d, want 30/41", c.AttendedClasses, c.TotalClasses)
	}

	stored, _ := s.Course(ctx, 4)
	if stored != c {
		t.Errorf("stored = %+v, want %+v", stored, c)
	}

	if _, err := RecordAttendance(ctx, s, 99, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("record unknown course error = %v, want ErrNotFound", err)
	}
}

func TestImportRejectsInvalidCourse(t *testing.T) {
	s := openTestStore(t)
	bad := []attendance.Course{{ID: 1, Name: "Maths", TotalClasses: 2, AttendedClasses: 3}}
	err := Import(context.Background(), s, bad, nil)
	if !errors.Is(err, attendance.ErrInvalidCourse) {
		t.Fatalf("import error = %v, want ErrInvalidCourse", err)
	}
}

func TestImportRejectsInvalidEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	bad := []attendance.Event{{ID: 1, Name: "Trip", Date: "20 June"}}
	err := Import(ctx, s, nil, bad)
	if !errors.Is(err, attendance.ErrInvalidEvent) {
		t.Fatalf("import error = %v, want ErrInvalidEvent", err)
	}
	if events, _ := s.Events(ctx); len(events) != 0 {
		t.Errorf("events = %d, want nothing stored", len(events))
	}
}

func TestSaveEventNormalizesCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.SaveEvent(ctx, attendance.Event{ID: 1, Name: "Field trip", Date: "2023-07-01", Category: "excursion"})
	if err != nil {
		t.Fatalf("save event: %v", err)
	}
	events, err := s.Events(ctx)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 1 || events[0].Category != attendance.CategoryOther {
		t.Errorf("events = %+v", events)
	}
}

func TestFileStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "oasys.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
	if _, err := Seed(ctx, s, attendance.SeedCourses(), attendance.SeedEvents()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	courses, err := s.Courses(ctx)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(courses) != 4 {
		t.Errorf("courses after reopen = %d, want 4", len(courses))
	}
}

func TestMemoryRepoIsReadOnly(t *testing.T) {
	r := NewSeed()
	ctx := context.Background()

	courses, err := r.Courses(ctx)
	if err != nil || len(courses) != 4 {
		t.Fatalf("courses = %d, err = %v", len(courses), err)
	}
	if err := r.SaveCourse(ctx, courses[0]); !errors.Is(err, ErrReadOnly) {
		t.Errorf("SaveCourse error = %v, want ErrReadOnly", err)
	}
	if _, err := RecordAttendance(ctx, r, 1, true); !errors.Is(err, ErrReadOnly) {
		t.Errorf("RecordAttendance error = %v, want ErrReadOnly", err)
	}
	if _, err := r.Course(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Course(42) error = %v, want ErrNotFound", err)
	}
}

func TestCreateTable(t *testing.T) {
	tests := []struct {
		name   string
		fields []ent.Field
		want   string
	}{
		{
			coursesTable, schema.Course{}.Fields(),
			"CREATE TABLE IF NOT EXISTS courses (id INTEGER PRIMARY KEY, name TEXT NOT NULL, " +
				"total_classes INTEGER NOT NULL DEFAULT 0, attended_classes INTEGER NOT NULL DEFAULT 0)",
		},
		{
			eventsTable, schema.Event{}.Fields(),
			"CREATE TABLE IF NOT EXISTS events (id INTEGER PRIMARY KEY, name TEXT NOT NULL, " +
				"date TEXT NOT NULL, category TEXT NOT NULL DEFAULT 'other')",
		},
	}
	for _, tt := range tests {
		if got := createTable(tt.name, tt.fields); got != tt.want {
			t.Errorf("createTable(%s)\n got: %s\nwant: %s", tt.name, got, tt.want)
		}
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 2; i++ {
		if err := s.migrate(context.Background()); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
	}
}
