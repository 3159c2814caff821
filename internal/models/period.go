package models

import "time"

// PeriodAll is the sentinel key selecting the whole dataset's range.
const PeriodAll = "all"

const periodKeyLayout = "2006-01-02"

// Period is a named date range scoping which records a report covers.
type Period struct {
	Key   string    `json:"key"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod derives the stable key for a start/end pair.
func NewPeriod(start, end time.Time) Period {
	return Period{
		Key:   start.Format(periodKeyLayout) + "_" + end.Format(periodKeyLayout),
		Start: start,
		End:   end,
	}
}

// Course is one catalog entry, the source of period discovery and the
// course filter dropdown.
type Course struct {
	ID       string     `db:"id" json:"id"`
	Code     string     `db:"code" json:"code"`
	Name     string     `db:"name" json:"name"`
	Shift    string     `db:"shift" json:"shift"`
	Capacity int        `db:"capacity" json:"capacity"`
	StartsAt *time.Time `db:"starts_at" json:"starts_at,omitempty"`
	EndsAt   *time.Time `db:"ends_at" json:"ends_at,omitempty"`
}

// DateRange is the min/max pair returned by range discovery.
type DateRange struct {
	Start *time.Time `db:"min_date"`
	End   *time.Time `db:"max_date"`
}
