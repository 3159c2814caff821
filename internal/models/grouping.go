package models

// CourseBucket partitions a group's sub-records by course, used by the
// finance view to render payments per course.
type CourseBucket struct {
	CourseID   string      `json:"course_id"`
	CourseCode string      `json:"course_code"`
	CourseName string      `json:"course_name"`
	Records    []RawRecord `json:"records"`
}

// ReportGroup is the derived per-owner aggregation of one or more raw
// records: one row per student, payer or course in the detail list.
type ReportGroup struct {
	OwnerID   string      `json:"owner_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Records   []RawRecord `json:"records"`

	// Finance only.
	Courses      []CourseBucket `json:"courses,omitempty"`
	TotalPaid    float64        `json:"total_paid,omitempty"`
	TotalPending float64        `json:"total_pending,omitempty"`
}

// FullName is the group's display name.
func (g ReportGroup) FullName() string {
	switch {
	case g.FirstName == "":
		return g.LastName
	case g.LastName == "":
		return g.FirstName
	default:
		return g.FirstName + " " + g.LastName
	}
}

// SortName is the composite used for alphabetical group ordering.
func (g ReportGroup) SortName() string {
	switch {
	case g.LastName == "":
		return g.FirstName
	case g.FirstName == "":
		return g.LastName
	default:
		return g.LastName + " " + g.FirstName
	}
}
