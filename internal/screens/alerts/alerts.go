// Package alerts lists courses that need attention.
package alerts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/theme"
)

// Screen shows the courses at or below the attendance threshold.
type Screen struct {
	alerts []attendance.CourseStat
}

var _ screen.Screen = (*Screen)(nil)

// New creates the alerts screen from a summary snapshot.
func New(summary attendance.Summary) *Screen {
	return &Screen{alerts: summary.Alerts()}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) Title() string {
	return "Alerts"
}

// Advice returns the guidance line shown for one alert.
func Advice(cs attendance.CourseStat) string {
	if !cs.HasData {
		return "No classes recorded yet"
	}
	n := attendance.Needed(cs.Course.TotalClasses, cs.Course.AttendedClasses)
	switch n {
	case 0:
		return "At the threshold: do not miss the next class"
	case 1:
		return fmt.Sprintf("Attend the next class to reach %d%%", attendance.ThresholdPercent)
	default:
		return fmt.Sprintf("Attend the next %d classes to reach %d%%", n, attendance.ThresholdPercent)
	}
}

func (s *Screen) View(width, height int, p theme.Palette) string {
	cw := width - 4
	if cw > 80 {
		cw = 80
	}

	if len(s.alerts) == 0 {
		body := lipgloss.NewStyle().Foreground(p.Success).Render("All courses are on track.")
		return components.CenterBlock(components.Card(p, "Alerts", body, cw, false), width, height)
	}

	var rows []string
	for _, cs := range s.alerts {
		head := p.Body().Bold(true).Render(cs.Course.Name) + "  " +
			lipgloss.NewStyle().Foreground(p.Level(cs.Percent)).Render(fmt.Sprintf("%d%%", cs.Percent)) + "  " +
			components.Badge(cs.Badge(), p.Error)
		rows = append(rows, head+"\n"+p.Hint().Render("  "+Advice(cs)))
	}
	body := strings.Join(rows, "\n\n")
	title := fmt.Sprintf("Alerts (%d)", len(s.alerts))
	return components.CenterBlock(components.Card(p, title, body, cw, false), width, height)
}
