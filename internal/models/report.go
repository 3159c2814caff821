package models

import "time"

// ReportDomain identifies one of the three report views of the console.
type ReportDomain string

const (
	DomainStudents ReportDomain = "students"
	DomainCourses  ReportDomain = "courses"
	DomainFinance  ReportDomain = "finance"
)

// Valid reports whether the domain is one of the supported report views.
func (d ReportDomain) Valid() bool {
	switch d {
	case DomainStudents, DomainCourses, DomainFinance:
		return true
	default:
		return false
	}
}

// RecordKind tags a raw record with the domain it was fetched for.
type RecordKind string

const (
	KindStudent RecordKind = "student"
	KindPayment RecordKind = "payment"
	KindCourse  RecordKind = "course"
)

// RecordStatus holds the backend status values. The catalog is Spanish
// because the institution's data is; the engine treats them as opaque
// enums.
type RecordStatus string

const (
	StatusInscrito   RecordStatus = "inscrito"
	StatusActivo     RecordStatus = "activo"
	StatusAusente    RecordStatus = "ausente"
	StatusAprobado   RecordStatus = "aprobado"
	StatusGraduado   RecordStatus = "graduado"
	StatusReprobado  RecordStatus = "reprobado"
	StatusPendiente  RecordStatus = "pendiente"
	StatusPagado     RecordStatus = "pagado"
	StatusVerificado RecordStatus = "verificado"
	StatusFinalizado RecordStatus = "finalizado"
	StatusCancelado  RecordStatus = "cancelado"
)

// DefaultStatus is the fallback applied when a row arrives without a status.
func DefaultStatus(kind RecordKind) RecordStatus {
	switch kind {
	case KindPayment:
		return StatusPendiente
	case KindCourse:
		return StatusActivo
	default:
		return StatusInscrito
	}
}

// RawRecord is one flat backend row for a report domain. Fields that do
// not apply to a kind stay at their zero value; nullable columns map to
// pointers so absent data stays distinguishable from zero.
type RawRecord struct {
	Kind       RecordKind   `db:"-" json:"kind"`
	OwnerID    string       `db:"owner_id" json:"owner_id"`
	FirstName  string       `db:"first_name" json:"first_name"`
	LastName   string       `db:"last_name" json:"last_name"`
	CourseID   string       `db:"course_id" json:"course_id"`
	CourseCode string       `db:"course_code" json:"course_code"`
	CourseName string       `db:"course_name" json:"course_name"`
	Status     RecordStatus `db:"status" json:"status"`
	Score      *float64     `db:"score" json:"score,omitempty"`
	Amount     *float64     `db:"amount" json:"amount,omitempty"`
	Method     string       `db:"method" json:"method,omitempty"`
	Shift      string       `db:"shift" json:"shift,omitempty"`
	Capacity   int          `db:"capacity" json:"capacity,omitempty"`
	Enrolled   int          `db:"enrolled" json:"enrolled,omitempty"`
	EnrolledAt *time.Time   `db:"enrolled_at" json:"enrolled_at,omitempty"`
	PaidAt     *time.Time   `db:"paid_at" json:"paid_at,omitempty"`
	StartsAt   *time.Time   `db:"starts_at" json:"starts_at,omitempty"`
	EndsAt     *time.Time   `db:"ends_at" json:"ends_at,omitempty"`
}

// FullName is the display name shown in report rows. Course rows have
// no person attached, so the course name stands in.
func (r RawRecord) FullName() string {
	switch {
	case r.Kind == KindCourse:
		return r.CourseName
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// SortName is the composite identity used for name ordering: last name
// first, matching how the console lists people.
func (r RawRecord) SortName() string {
	switch {
	case r.Kind == KindCourse:
		return r.CourseName
	case r.LastName == "":
		return r.FirstName
	case r.FirstName == "":
		return r.LastName
	default:
		return r.LastName + " " + r.FirstName
	}
}

// NormalizedStatus returns the status with the per-kind default applied.
func (r RawRecord) NormalizedStatus() RecordStatus {
	if r.Status == "" {
		return DefaultStatus(r.Kind)
	}
	return r.Status
}

// AmountValue treats a missing amount as zero.
func (r RawRecord) AmountValue() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

// Timestamp picks the most relevant date for the record kind. Missing
// dates collapse to the zero time so they order earliest.
func (r RawRecord) Timestamp() time.Time {
	var t *time.Time
	switch r.Kind {
	case KindPayment:
		t = r.PaidAt
	case KindCourse:
		t = r.StartsAt
	default:
		t = r.EnrolledAt
	}
	if t == nil {
		return time.Time{}
	}
	return *t
}

// SortKey selects the comparator for ordering a record collection.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCapacity SortKey = "capacity"
)

// ValidFor reports whether the sort key applies to the given domain.
func (k SortKey) ValidFor(domain ReportDomain) bool {
	switch k {
	case SortByName, SortByDate:
		return true
	case SortByAmount:
		return domain == DomainFinance
	case SortByCapacity:
		return domain == DomainCourses
	default:
		return false
	}
}

// DefaultAscending returns the initial direction when a key is first
// selected. Amounts list largest first.
func (k SortKey) DefaultAscending() bool {
	return k != SortByAmount
}
