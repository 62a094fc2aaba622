package attendance

// SeedCourses returns the built-in demonstration courses.
func SeedCourses() []Course {
	return []Course{
		{ID: 1, Name: "Mathematics", TotalClasses: 50, AttendedClasses: 40},
		{ID: 2, Name: "Physics", TotalClasses: 45, AttendedClasses: 35},
		{ID: 3, Name: "Computer Science", TotalClasses: 60, AttendedClasses: 55},
		{ID: 4, Name: "English", TotalClasses: 40, AttendedClasses: 30},
	}
}

// SeedEvents returns the built-in demonstration events.
func SeedEvents() []Event {
	return []Event{
		{ID: 1, Name: "Mathematics Test", Date: "2023-06-20", Category: CategoryTest},
		{ID: 2, Name: "Physics Assignment Due", Date: "2023-06-22", Category: CategoryAssignment},
		{ID: 3, Name: "Semester Fee Payment", Date: "2023-06-25", Category: CategoryFee},
		{ID: 4, Name: "English Presentation", Date: "2023-06-28", Category: CategoryTest},
		{ID: 5, Name: "Computer Science Project Submission", Date: "2023-06-30", Category: CategoryAssignment},
	}
}
