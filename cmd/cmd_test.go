package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oasys/internal/report"
	"github.com/abhisek/oasys/internal/store"
)

// execute runs the root command with args and returns its stdout. Flags
// keep their values between runs, so every flag is reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, name := range []string{"config", "db", "redis", "data", "log"} {
		require.NoError(t, rootCmd.PersistentFlags().Set(name, ""))
	}
	require.NoError(t, askCmd.Flags().Set("json", "false"))
	require.NoError(t, attendCmd.Flags().Set("absent", "false"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCoursesSeedData(t *testing.T) {
	out, err := execute(t, "courses")
	require.NoError(t, err)

	assert.Contains(t, out, "Mathematics")
	assert.Contains(t, out, "Attendance required")
	assert.Contains(t, out, "Overall attendance: 82% (You're on track!)")
}

func TestEventsSorted(t *testing.T) {
	out, err := execute(t, "events")
	require.NoError(t, err)

	first := bytes.Index([]byte(out), []byte("Mathematics Test"))
	last := bytes.Index([]byte(out), []byte("Computer Science Project Submission"))
	require.NotEqual(t, -1, first)
	assert.Less(t, first, last)
}

func TestAsk(t *testing.T) {
	out, err := execute(t, "ask", "what", "is", "my", "attendance")
	require.NoError(t, err)
	assert.Contains(t, out, "Your current overall attendance is 82%")

	out, err = execute(t, "ask", "--json", "plan", "a", "vacation")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind":"holiday"`)
}

func TestAskBlank(t *testing.T) {
	_, err := execute(t, "ask", "   ")
	assert.Error(t, err)
}

func TestAttendReadOnly(t *testing.T) {
	_, err := execute(t, "attend", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrReadOnly))
}

func TestAttendSQLite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "data", "oasys.db")

	out, err := execute(t, "--db", db, "attend", "4", "--absent")
	require.NoError(t, err)
	assert.Contains(t, out, "English: 30 / 41 classes")

	out, err = execute(t, "--db", db, "courses")
	require.NoError(t, err)
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "41")
}

func TestReportThenImport(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "out.xlsx")

	out, err := execute(t, "report", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "4 courses, 5 events")

	sheet, err := report.ImportFile(xlsx)
	require.NoError(t, err)
	assert.Len(t, sheet.Courses, 4)

	db := filepath.Join(dir, "oasys.db")
	out, err = execute(t, "--db", db, "import", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 4 courses and 5 events")
}

func TestImportJSONIntoReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"courses":[{"id":1,"name":"Art","total_classes":10,"attended_classes":9}]}`), 0o644))

	_, err := execute(t, "import", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrReadOnly))
}

func TestImportUnsupported(t *testing.T) {
	_, _, err := readImportFile("data.csv")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "oasys")
}

func TestDefaultDBPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	_, err := execute(t, "--db", "default", "attend", "1")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dataHome, "oasys", "oasys.db"))
}
