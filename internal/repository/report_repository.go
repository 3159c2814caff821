package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academia-console-api/internal/models"
)

// ReportRepository fetches the flat record sets the report engine
// consumes. Each query returns every row inside the period range with
// the dropdown filters applied; search, sort, grouping and pagination
// happen in the service layer over the full set.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// StudentRecords returns one row per enrollment in the period.
func (r *ReportRepository) StudentRecords(ctx context.Context, filter models.RecordFilter) ([]models.RawRecord, error) {
	args := []interface{}{filter.Start, filter.End}
	conditions := []string{"e.enrolled_at BETWEEN $1 AND $2"}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.CourseID != "" {
		conditions = append(conditions, fmt.Sprintf("e.course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}

	query := fmt.Sprintf(`SELECT s.id AS owner_id, s.first_name, s.last_name,
        c.id AS course_id, c.code AS course_code, c.name AS course_name,
        e.status, e.score, e.enrolled_at
        FROM enrollments e
        JOIN students s ON s.id = e.student_id
        JOIN courses c ON c.id = e.course_id
        WHERE %s
        ORDER BY e.enrolled_at`, strings.Join(conditions, " AND "))

	var records []models.RawRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list student records: %w", err)
	}
	for i := range records {
		records[i].Kind = models.KindStudent
	}
	return records, nil
}

// PaymentRecords returns one row per payment in the period.
func (r *ReportRepository) PaymentRecords(ctx context.Context, filter models.RecordFilter) ([]models.RawRecord, error) {
	args := []interface{}{filter.Start, filter.End}
	conditions := []string{"p.paid_at BETWEEN $1 AND $2"}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.CourseID != "" {
		conditions = append(conditions, fmt.Sprintf("p.course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}
	if filter.Method != "" {
		conditions = append(conditions, fmt.Sprintf("p.method = $%d", len(args)+1))
		args = append(args, filter.Method)
	}

	query := fmt.Sprintf(`SELECT s.id AS owner_id, s.first_name, s.last_name,
        c.id AS course_id, c.code AS course_code, c.name AS course_name,
        p.status, p.amount, p.method, p.paid_at
        FROM payments p
        JOIN students s ON s.id = p.student_id
        JOIN courses c ON c.id = p.course_id
        WHERE %s
        ORDER BY p.paid_at`, strings.Join(conditions, " AND "))

	var records []models.RawRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list payment records: %w", err)
	}
	for i := range records {
		records[i].Kind = models.KindPayment
	}
	return records, nil
}

// CourseRecords returns one row per course starting in the period with
// its live enrollment count. The occupancy band filter is applied here
// after the scan because the band thresholds are engine constants, not
// column values.
func (r *ReportRepository) CourseRecords(ctx context.Context, filter models.RecordFilter) ([]models.RawRecord, error) {
	args := []interface{}{filter.Start, filter.End}
	conditions := []string{"c.starts_at BETWEEN $1 AND $2"}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Shift != "" {
		conditions = append(conditions, fmt.Sprintf("c.shift = $%d", len(args)+1))
		args = append(args, filter.Shift)
	}

	query := fmt.Sprintf(`SELECT c.id AS owner_id, c.id AS course_id, c.code AS course_code, c.name AS course_name,
        c.status, c.shift, c.capacity, c.starts_at, c.ends_at,
        COUNT(e.id) AS enrolled
        FROM courses c
        LEFT JOIN enrollments e ON e.course_id = c.id
        WHERE %s
        GROUP BY c.id
        ORDER BY c.starts_at`, strings.Join(conditions, " AND "))

	var records []models.RawRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list course records: %w", err)
	}
	for i := range records {
		records[i].Kind = models.KindCourse
	}
	if filter.Occupancy == "" {
		return records, nil
	}

	filtered := make([]models.RawRecord, 0, len(records))
	for _, record := range records {
		if occupancyBand(record.Enrolled, record.Capacity) == filter.Occupancy {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// ListCourses returns the catalog ordered by start date, the source of
// both the course dropdown and period discovery.
func (r *ReportRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, code, name, shift, capacity, starts_at, ends_at FROM courses ORDER BY starts_at DESC, code`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// DateRange returns the catalog's overall start/end bounds. Both sides
// are nil on an empty catalog.
func (r *ReportRepository) DateRange(ctx context.Context) (models.DateRange, error) {
	const query = `SELECT MIN(starts_at) AS min_date, MAX(ends_at) AS max_date FROM courses`
	var bounds models.DateRange
	if err := r.db.GetContext(ctx, &bounds, query); err != nil {
		return models.DateRange{}, fmt.Errorf("course date range: %w", err)
	}
	return bounds, nil
}

func occupancyBand(enrolled, capacity int) string {
	if capacity <= 0 {
		return models.OccupancyLow
	}
	ratio := float64(enrolled) / float64(capacity)
	switch {
	case ratio < 0.5:
		return models.OccupancyLow
	case ratio <= 0.85:
		return models.OccupancyMedium
	default:
		return models.OccupancyHigh
	}
}
