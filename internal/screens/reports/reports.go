// Package reports shows the attendance table and exports it to a
// spreadsheet.
package reports

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/report"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

// exportedMsg reports the outcome of an export.
type exportedMsg struct {
	Path string
	Err  error
}

// Screen renders the report and exports it on demand.
type Screen struct {
	courses []attendance.Course
	events  []attendance.Event
	dir     string
	now     func() time.Time

	exporting bool
	lastPath  string
	lastErr   error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the reports screen. Exports are written to dir.
func New(courses []attendance.Course, events []attendance.Event, dir string) *Screen {
	if dir == "" {
		dir = "."
	}
	return &Screen{
		courses: courses,
		events:  events,
		dir:     dir,
		now:     time.Now,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Reports"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "e", Description: "Export .xlsx"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		s.exporting = false
		s.lastPath = msg.Path
		s.lastErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "e" && !s.exporting {
			s.exporting = true
			return s, s.export()
		}
	}
	return s, nil
}

// FileName returns the export file name for t.
func FileName(t time.Time) string {
	return fmt.Sprintf("attendance-%s.xlsx", t.Format("20060102-150405"))
}

func (s *Screen) export() tea.Cmd {
	path := filepath.Join(s.dir, FileName(s.now()))
	courses, events := s.courses, s.events
	return func() tea.Msg {
		return exportedMsg{Path: path, Err: report.Export(path, courses, events)}
	}
}

func (s *Screen) View(width, height int, p theme.Palette) string {
	cw := width - 4
	if cw > 90 {
		cw = 90
	}

	summary := attendance.Summarize(s.courses)

	header := fmt.Sprintf("%-20s %8s %6s %8s %8s", "Course", "Attended", "Total", "Percent", "Missable")
	lines := []string{p.Hint().Render(header)}
	for _, cs := range summary.Courses {
		row := fmt.Sprintf("%-20s %8d %6d %7d%% %8d",
			truncate(cs.Course.Name, 20),
			cs.Course.AttendedClasses,
			cs.Course.TotalClasses,
			cs.Percent,
			cs.Missable,
		)
		lines = append(lines, lipgloss.NewStyle().Foreground(p.Level(cs.Percent)).Render(row))
	}
	lines = append(lines, "",
		p.Body().Bold(true).Render(fmt.Sprintf("Overall: %d%%  %s", summary.Overall, summary.Status())))

	lines = append(lines, "")
	switch {
	case s.exporting:
		lines = append(lines, p.Hint().Render("Exporting..."))
	case s.lastErr != nil:
		lines = append(lines, lipgloss.NewStyle().Foreground(p.Error).Render("Export failed: "+s.lastErr.Error()))
	case s.lastPath != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(p.Success).Render("Saved "+s.lastPath))
	default:
		lines = append(lines, p.Hint().Render("Press e to export to "+s.dir))
	}

	card := components.Card(p, "Attendance Report", strings.Join(lines, "\n"), cw, false)
	return components.CenterBlock(card, width, height)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
