package models

// StudentStatistics summarises the student report. Counts are over
// distinct students, not enrollment rows.
type StudentStatistics struct {
	TotalStudents int    `json:"total_students"`
	Approved      int    `json:"approved"`
	ApprovalRate  string `json:"approval_rate"`
	InProgress    int    `json:"in_progress"`
	Failed        int    `json:"failed"`
}

// FinanceStatistics summarises the finance report.
type FinanceStatistics struct {
	TotalRecords  int     `json:"total_records"`
	IncomeTotal   float64 `json:"income_total"`
	AverageAmount float64 `json:"average_amount"`
	Verified      int     `json:"verified"`
	Pending       int     `json:"pending"`
}

// CourseStatistics summarises the course report.
type CourseStatistics struct {
	TotalCourses    int `json:"total_courses"`
	AverageCapacity int `json:"average_capacity"`
	Active          int `json:"active"`
	Finalized       int `json:"finalized"`
	Cancelled       int `json:"cancelled"`
}

// StatisticsSnapshot carries the summary-card numbers for the current
// filtered record set. Exactly one field is populated per domain.
type StatisticsSnapshot struct {
	Students *StudentStatistics `json:"students,omitempty"`
	Finance  *FinanceStatistics `json:"finance,omitempty"`
	Courses  *CourseStatistics  `json:"courses,omitempty"`
}
