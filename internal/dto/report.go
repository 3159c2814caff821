package dto

import "github.com/noah-isme/academia-console-api/internal/models"

// ReportRequest triggers a report generation: one fetch against the
// record source scoped by period and dropdown filters.
type ReportRequest struct {
	Domain    models.ReportDomain `json:"domain" validate:"required"`
	Period    string              `json:"period"`
	CourseID  string              `json:"course_id"`
	Status    string              `json:"status"`
	Method    string              `json:"method"`
	Shift     string              `json:"shift"`
	Occupancy string              `json:"occupancy"`
}

// ViewRequest re-renders the already fetched report under new
// selections. SortBy is sent only when the sort control is activated:
// repeating the active key flips the direction.
type ViewRequest struct {
	Search  string `json:"search"`
	SortBy  string `json:"sort_by"`
	Page    int    `json:"page"`
	HasPage bool   `json:"-"`
}

// ReportViewResponse is one rendered report view. The datos and
// estadisticas keys mirror the wire contract the console consumes.
type ReportViewResponse struct {
	Domain       models.ReportDomain       `json:"domain"`
	Period       models.Period             `json:"period"`
	Datos        []models.ReportGroup      `json:"datos"`
	Estadisticas models.StatisticsSnapshot `json:"estadisticas"`
	Search       string                    `json:"search,omitempty"`
	SortBy       models.SortKey            `json:"sort_by"`
	Ascending    bool                      `json:"ascending"`
}
