package models

import "time"

// Occupancy bands for the course report filter, measured as enrolled
// over declared capacity.
const (
	OccupancyLow    = "baja"  // below 50%
	OccupancyMedium = "media" // 50% to 85%
	OccupancyHigh   = "alta"  // above 85%
)

// RecordFilter scopes a record fetch: the resolved period range plus
// the domain-specific dropdown filters.
type RecordFilter struct {
	Start     time.Time
	End       time.Time
	Status    RecordStatus
	CourseID  string
	Method    string
	Shift     string
	Occupancy string
}
