package attendance

import (
	"errors"
	"testing"
)

func TestMissable(t *testing.T) {
	tests := []struct {
		name            string
		total, attended int
		want            int
	}{
		{"mathematics", 50, 40, 2},
		{"physics", 45, 35, 1},
		{"computer science", 60, 55, 10},
		{"exactly at threshold", 40, 30, 0},
		{"below threshold", 40, 20, 0},
		{"no classes", 0, 0, 0},
		{"all attended", 4, 4, 1},
		{"fractional remainder", 10, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Missable(tt.total, tt.attended); got != tt.want {
				t.Errorf("Missable(%d, %d) = %d, want %d", tt.total, tt.attended, got, tt.want)
			}
		})
	}
}

func TestMissableNeverNegative(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for attended := 0; attended <= total; attended++ {
			if got := Missable(total, attended); got < 0 {
				t.Fatalf("Missable(%d, %d) = %d, want >= 0", total, attended, got)
			}
		}
	}
}

func TestOverall(t *testing.T) {
	if got := Overall(SeedCourses()); got != 82 {
		t.Errorf("Overall(seed) = %d, want 82", got)
	}
	if got := Overall(nil); got != 0 {
		t.Errorf("Overall(nil) = %d, want 0", got)
	}
	noData := []Course{{ID: 1, Name: "Art"}, {ID: 2, Name: "Music"}}
	if got := Overall(noData); got != 0 {
		t.Errorf("Overall(no classes) = %d, want 0", got)
	}
}

func TestOverallRoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% -> 13
	courses := []Course{{ID: 1, Name: "A", TotalClasses: 8, AttendedClasses: 1}}
	if got := Overall(courses); got != 13 {
		t.Errorf("Overall = %d, want 13", got)
	}
	// 2/3 = 66.67% -> 67
	courses = []Course{{ID: 1, Name: "A", TotalClasses: 3, AttendedClasses: 2}}
	if got := Overall(courses); got != 67 {
		t.Errorf("Overall = %d, want 67", got)
	}
}

func TestOverallWithinBounds(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for attended := 0; attended <= total; attended++ {
			courses := []Course{
				{ID: 1, Name: "A", TotalClasses: total, AttendedClasses: attended},
				{ID: 2, Name: "B", TotalClasses: 7, AttendedClasses: 3},
			}
			got := Overall(courses)
			if got < 0 || got > 100 {
				t.Fatalf("Overall out of range: %d", got)
			}
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		course Course
		want   int
	}{
		{Course{Name: "Mathematics", TotalClasses: 50, AttendedClasses: 40}, 80},
		{Course{Name: "Physics", TotalClasses: 45, AttendedClasses: 35}, 78},
		{Course{Name: "Computer Science", TotalClasses: 60, AttendedClasses: 55}, 92},
		{Course{Name: "Empty"}, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.course); got != tt.want {
			t.Errorf("Percent(%s) = %d, want %d", tt.course.Name, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		course  Course
		wantErr bool
	}{
		{"valid", Course{ID: 1, Name: "Maths", TotalClasses: 10, AttendedClasses: 5}, false},
		{"no classes", Course{ID: 1, Name: "Maths"}, false},
		{"blank name", Course{ID: 1, Name: "  ", TotalClasses: 1}, true},
		{"negative total", Course{ID: 1, Name: "Maths", TotalClasses: -1}, true},
		{"negative attended", Course{ID: 1, Name: "Maths", TotalClasses: 1, AttendedClasses: -1}, true},
		{"attended exceeds total", Course{ID: 1, Name: "Maths", TotalClasses: 3, AttendedClasses: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCourse) {
					t.Errorf("Validate() = %v, want ErrInvalidCourse", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestRecord(t *testing.T) {
	c := Course{ID: 1, Name: "Maths", TotalClasses: 10, AttendedClasses: 8}

	present := c.Record(true)
	if present.TotalClasses != 11 || present.AttendedClasses != 9 {
		t.Errorf("Record(true) = %d/%d, want 9/11", present.AttendedClasses, present.TotalClasses)
	}

	absent := c.Record(false)
	if absent.TotalClasses != 11 || absent.AttendedClasses != 8 {
		t.Errorf("Record(false) = %d/%d, want 8/11", absent.AttendedClasses, absent.TotalClasses)
	}

	if c.TotalClasses != 10 {
		t.Error("Record must not mutate the receiver")
	}
}

func TestNeeded(t *testing.T) {
	tests := []struct {
		total, attended, want int
	}{
		{40, 30, 0},
		{40, 29, 4},
		{10, 5, 10},
		{0, 0, 0},
		{50, 40, 0},
	}
	for _, tt := range tests {
		if got := Needed(tt.total, tt.attended); got != tt.want {
			t.Errorf("Needed(%d, %d) = %d, want %d", tt.total, tt.attended, got, tt.want)
		}
	}
}
