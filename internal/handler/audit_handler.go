package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academia-console-api/internal/models"
	appErrors "github.com/noah-isme/academia-console-api/pkg/errors"
	"github.com/noah-isme/academia-console-api/pkg/response"
)

type auditHistory interface {
	History(ctx context.Context, page int) ([]models.AuditLog, *models.Pagination, error)
}

// AuditHandler serves the console audit history panel.
type AuditHandler struct {
	audits auditHistory
}

// NewAuditHandler constructs an audit handler.
func NewAuditHandler(audits auditHistory) *AuditHandler {
	return &AuditHandler{audits: audits}
}

// History godoc
// @Summary List audit entries
// @Tags Audit
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /audit [get]
func (h *AuditHandler) History(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "page must be a number"))
			return
		}
		page = parsed
	}

	entries, pagination, err := h.audits.History(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, pagination)
}
