package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academia-console-api/internal/dto"
	"github.com/noah-isme/academia-console-api/internal/models"
	appErrors "github.com/noah-isme/academia-console-api/pkg/errors"
	"github.com/noah-isme/academia-console-api/pkg/response"
)

type reportService interface {
	Generate(ctx context.Context, userID string, req dto.ReportRequest) (*dto.ReportViewResponse, *models.Pagination, error)
	View(ctx context.Context, userID string, req dto.ViewRequest) (*dto.ReportViewResponse, *models.Pagination, error)
	Periods(ctx context.Context) ([]models.Period, error)
}

type courseCatalog interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

// ReportHandler exposes the report console endpoints.
type ReportHandler struct {
	reports reportService
	catalog courseCatalog
}

// NewReportHandler constructs a report handler.
func NewReportHandler(reports reportService, catalog courseCatalog) *ReportHandler {
	return &ReportHandler{reports: reports, catalog: catalog}
}

// Generate godoc
// @Summary Generate a report for the session
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Report request"
// @Success 200 {object} response.Envelope
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	view, pagination, err := h.reports.Generate(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, pagination)
}

// View godoc
// @Summary Re-render the session's report under new selections
// @Tags Reports
// @Produce json
// @Param search query string false "Search query"
// @Param sort_by query string false "Sort key to activate"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /reports/view [get]
func (h *ReportHandler) View(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	req := dto.ViewRequest{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "page must be a number"))
			return
		}
		req.Page = page
		req.HasPage = true
	}

	view, pagination, err := h.reports.View(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, pagination)
}

// Periods godoc
// @Summary List selectable report periods
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/periods [get]
func (h *ReportHandler) Periods(c *gin.Context) {
	periods, err := h.reports.Periods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, periods, nil)
}

// Courses godoc
// @Summary List courses for the filter dropdown
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/courses [get]
func (h *ReportHandler) Courses(c *gin.Context) {
	courses, err := h.catalog.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}
