package attendance

import "fmt"

// CourseStat is the derived view of a single course.
type CourseStat struct {
	Course   Course
	Percent  int
	Missable int
	HasData  bool
}

// OnTrack reports whether the course is at or above the threshold.
func (s CourseStat) OnTrack() bool {
	return s.HasData && s.Percent >= ThresholdPercent
}

// NeedsAttention reports whether the course should raise an alert: either no
// classes are recorded or no further absences are allowed.
func (s CourseStat) NeedsAttention() bool {
	return !s.HasData || s.Missable == 0
}

// Badge returns the short status label shown next to a course.
func (s CourseStat) Badge() string {
	switch {
	case !s.HasData:
		return "No data"
	case s.Missable == 1:
		return "Can miss 1 class"
	case s.Missable > 1:
		return fmt.Sprintf("Can miss %d classes", s.Missable)
	default:
		return "Attendance required"
	}
}

// Summary aggregates attendance across a set of courses.
type Summary struct {
	Overall int
	Courses []CourseStat
}

// Summarize computes the overall percentage and per-course stats.
func Summarize(courses []Course) Summary {
	stats := make([]CourseStat, 0, len(courses))
	for _, c := range courses {
		stats = append(stats, Stat(c))
	}
	return Summary{
		Overall: Overall(courses),
		Courses: stats,
	}
}

// Stat derives the CourseStat for one course.
func Stat(c Course) CourseStat {
	return CourseStat{
		Course:   c,
		Percent:  Percent(c),
		Missable: Missable(c.TotalClasses, c.AttendedClasses),
		HasData:  c.HasData(),
	}
}

// OnTrack reports whether overall attendance meets the threshold.
func (s Summary) OnTrack() bool {
	return s.Overall >= ThresholdPercent
}

// Status returns the overall status line.
func (s Summary) Status() string {
	if s.OnTrack() {
		return "You're on track!"
	}
	return "Needs improvement"
}

// Alerts returns the courses that need attention.
func (s Summary) Alerts() []CourseStat {
	var out []CourseStat
	for _, cs := range s.Courses {
		if cs.NeedsAttention() {
			out = append(out, cs)
		}
	}
	return out
}
