package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/oasys/ent/schema"
	"github.com/abhisek/oasys/internal/attendance"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const (
	coursesTable = "courses"
	eventsTable  = "events"
)

var (
	courseColumns = schema.Columns(schema.Course{}.Fields())
	eventColumns  = schema.Columns(schema.Event{}.Fields())
)

// Store is a SQLite-backed Repo.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	sql *entsql.DialectBuilder
}

var _ Repo = (*Store)(nil)

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{
		db:  db,
		drv: entsql.OpenDB(dialect.SQLite, db),
		sql: entsql.Dialect(dialect.SQLite),
	}

	if err := s.migrate(context.Background()); err != nil {
		s.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	tables := []string{
		createTable(coursesTable, schema.Course{}.Fields()),
		createTable(eventsTable, schema.Event{}.Fields()),
	}
	for _, query := range tables {
		if err := s.drv.Exec(ctx, query, []any{}, nil); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// createTable renders the DDL for an ent schema's fields. The "id" field
// becomes the primary key; other fields are NOT NULL with their defaults.
func createTable(name string, fields []ent.Field) string {
	defs := make([]string, 0, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		if d.Name == "id" {
			defs = append(defs, "id INTEGER PRIMARY KEY")
			continue
		}
		def := d.Name + " " + columnType(d.Info.Type) + " NOT NULL"
		switch v := d.Default.(type) {
		case int:
			def += fmt.Sprintf(" DEFAULT %d", v)
		case string:
			def += " DEFAULT '" + strings.ReplaceAll(v, "'", "''") + "'"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", name, strings.Join(defs, ", "))
}

func columnType(t field.Type) string {
	switch t {
	case field.TypeInt, field.TypeInt64, field.TypeBool:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func (s *Store) Courses(ctx context.Context) ([]attendance.Course, error) {
	query, args := s.sql.Select(courseColumns...).
		From(entsql.Table(coursesTable)).
		OrderBy("id").
		Query()
	return s.queryCourses(ctx, query, args)
}

func (s *Store) Course(ctx context.Context, id int) (attendance.Course, error) {
	query, args := s.sql.Select(courseColumns...).
		From(entsql.Table(coursesTable)).
		Where(entsql.EQ("id", id)).
		Query()
	courses, err := s.queryCourses(ctx, query, args)
	if err != nil {
		return attendance.Course{}, err
	}
	if len(courses) == 0 {
		return attendance.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return courses[0], nil
}

func (s *Store) SaveCourse(ctx context.Context, c attendance.Course) error {
	query, args := s.sql.Insert(coursesTable).
		Columns(courseColumns...).
		Values(c.ID, c.Name, c.TotalClasses, c.AttendedClasses).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save course: %w", err)
	}
	return nil
}

func (s *Store) Events(ctx context.Context) ([]attendance.Event, error) {
	query, args := s.sql.Select(eventColumns...).
		From(entsql.Table(eventsTable)).
		OrderBy("id").
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		var category string
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &category); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Category = attendance.ParseCategory(category)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (s *Store) SaveEvent(ctx context.Context, e attendance.Event) error {
	query, args := s.sql.Insert(eventsTable).
		Columns(eventColumns...).
		Values(e.ID, e.Name, e.Date, string(attendance.ParseCategory(string(e.Category)))).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (s *Store) queryCourses(ctx context.Context, query string, args []any) ([]attendance.Course, error) {
	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []attendance.Course
	for rows.Next() {
		var c attendance.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalClasses, &c.AttendedClasses); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return courses, nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultPathName selects DefaultDBPath when used as the store path.
const DefaultPathName = "default"

// DefaultDBPath resolves the database file path:
// 1. $XDG_DATA_HOME/oasys/oasys.db
// 2. ~/.local/share/oasys/oasys.db
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "oasys", "oasys.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
