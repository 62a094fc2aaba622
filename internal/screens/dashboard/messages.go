package dashboard

import "github.com/abhisek/oasys/internal/attendance"

// dataLoadedMsg carries the result of reading the repo.
type dataLoadedMsg struct {
	Courses []attendance.Course
	Events  []attendance.Event
	Err     error
}

// ReloadMsg asks the dashboard to re-read its data source.
type ReloadMsg struct{}
