package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

const (
	sidebarWidth        = 24
	sidebarWidthCompact = 20
)

func (d *Screen) View(width, height int, p theme.Palette) string {
	sw := sidebarWidth
	if layout.IsCompactWidth(width) {
		sw = sidebarWidthCompact
	}
	sidebar := components.Card(p, "Menu", d.menu.View(p, d.focus == focusMenu), sw, d.focus == focusMenu)

	mainWidth := width - sw - 1
	var main string
	switch {
	case d.err != nil:
		main = components.Card(p, "Error",
			lipgloss.NewStyle().Foreground(p.Error).Render("Could not load attendance data: "+d.err.Error())+
				"\n\n"+p.Hint().Render("Press r to retry"),
			mainWidth, false)
	case !d.loaded:
		main = components.Card(p, "", p.Hint().Render("Loading attendance..."), mainWidth, false)
	default:
		compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
		main = lipgloss.JoinVertical(lipgloss.Left,
			d.renderTopRow(p, mainWidth),
			d.renderBreakdown(p, mainWidth, compact),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
}

// renderTopRow renders the overall, alerts and events cards side by side.
func (d *Screen) renderTopRow(p theme.Palette, width int) string {
	third := width / 3
	last := width - 2*third

	s := d.summary

	status := lipgloss.NewStyle().Foreground(p.Success).Render(s.Status())
	if !s.OnTrack() {
		status = lipgloss.NewStyle().Foreground(p.Error).Render(s.Status())
	}
	overall := strings.Join([]string{
		lipgloss.NewStyle().Foreground(p.Level(s.Overall)).Bold(true).Render(fmt.Sprintf("%d%%", s.Overall)),
		components.NewProgressBar("", s.Overall, false, components.CardInnerWidth(third)).View(p),
		status,
	}, "\n")

	alerts := s.Alerts()
	alertColor := p.Success
	if len(alerts) > 0 {
		alertColor = p.Error
	}
	alertText := "All courses on track"
	if len(alerts) == 1 {
		alertText = "course needs attention"
	} else if len(alerts) > 1 {
		alertText = "courses need attention"
	}
	alertBody := strings.Join([]string{
		lipgloss.NewStyle().Foreground(alertColor).Bold(true).Render(fmt.Sprintf("%d", len(alerts))),
		p.Hint().Render(alertText),
	}, "\n")

	// One extra line for the events "more" marker.
	rows := eventRows + 1
	cards := []string{
		components.Card(p, "Overall Attendance", padLines(overall, rows), third, false),
		components.Card(p, "Alerts", padLines(alertBody, rows), third, false),
		components.Card(p, "Upcoming Events", d.renderEvents(p, components.CardInnerWidth(last)), last, d.focus == focusEvents),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderEvents renders the visible window of the scrollable events list.
func (d *Screen) renderEvents(p theme.Palette, width int) string {
	if len(d.events) == 0 {
		return padLines(p.Hint().Render("No upcoming events"), eventRows+1)
	}

	end := d.eventOffset + eventRows
	if end > len(d.events) {
		end = len(d.events)
	}

	var lines []string
	for _, e := range d.events[d.eventOffset:end] {
		date := formatDate(e)
		nameWidth := width - lipgloss.Width(date) - 3
		line := components.Dot(categoryColor(p, e.Category)) + " " +
			p.Body().Render(truncate(e.Name, nameWidth))
		gap := width - lipgloss.Width(line) - lipgloss.Width(date)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, line+strings.Repeat(" ", gap)+p.Hint().Render(date))
	}
	if more := len(d.events) - end; more > 0 {
		lines = append(lines, p.Hint().Render(fmt.Sprintf("  ↓ %d more", more)))
	}
	return padLines(strings.Join(lines, "\n"), eventRows+1)
}

// renderBreakdown renders the course-wise breakdown card.
func (d *Screen) renderBreakdown(p theme.Palette, width int, compact bool) string {
	inner := components.CardInnerWidth(width)
	if len(d.summary.Courses) == 0 {
		return components.Card(p, "Course-Wise Breakdown", p.Hint().Render("No courses yet"), width, false)
	}

	var rows []string
	for _, cs := range d.summary.Courses {
		if compact {
			rows = append(rows, renderCourseLine(p, cs, inner))
		} else {
			rows = append(rows, renderCourseBlock(p, cs, inner))
		}
	}
	return components.Card(p, "Course-Wise Breakdown", strings.Join(rows, "\n"), width, false)
}

// renderCourseBlock renders a course as a name/badge line over a bar line.
func renderCourseBlock(p theme.Palette, cs attendance.CourseStat, width int) string {
	name := p.Body().Bold(true).Render(cs.Course.Name)
	badge := components.Badge(cs.Badge(), badgeColor(p, cs))
	gap := width - lipgloss.Width(name) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	top := name + strings.Repeat(" ", gap) + badge

	classes := p.Hint().Render(fmt.Sprintf("  %d / %d classes", cs.Course.AttendedClasses, cs.Course.TotalClasses))
	bar := components.NewProgressBar("", cs.Percent, true, width-lipgloss.Width(classes)).View(p)
	return top + "\n" + bar + classes
}

// renderCourseLine renders a course on a single line for short terminals.
func renderCourseLine(p theme.Palette, cs attendance.CourseStat, width int) string {
	name := p.Body().Render(fmt.Sprintf("%-16s", truncate(cs.Course.Name, 16)))
	badge := components.Badge(cs.Badge(), badgeColor(p, cs))
	classes := p.Hint().Render(fmt.Sprintf(" %d/%d ", cs.Course.AttendedClasses, cs.Course.TotalClasses))
	barWidth := width - lipgloss.Width(name) - lipgloss.Width(classes) - lipgloss.Width(badge) - 1
	bar := components.NewProgressBar("", cs.Percent, true, barWidth).View(p)
	return name + " " + bar + classes + badge
}

func badgeColor(p theme.Palette, cs attendance.CourseStat) color.Color {
	switch {
	case !cs.HasData:
		return p.TextDim
	case cs.NeedsAttention():
		return p.Error
	default:
		return p.Success
	}
}

func categoryColor(p theme.Palette, c attendance.Category) color.Color {
	switch c {
	case attendance.CategoryTest:
		return p.Error
	case attendance.CategoryAssignment:
		return p.Secondary
	case attendance.CategoryFee:
		return p.Accent
	default:
		return p.TextDim
	}
}

// formatDate renders an event date as "Jun 20", or the raw value when it
// does not parse.
func formatDate(e attendance.Event) string {
	t := e.Time()
	if t.IsZero() {
		return e.Date
	}
	return t.Format("Jan 2")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// padLines pads s with blank lines up to n lines so sibling cards align.
func padLines(s string, n int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= n {
		return s
	}
	return s + strings.Repeat("\n", n-lines)
}
