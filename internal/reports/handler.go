package reports

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service ReportService
}

// NewHandler creates a new reports handler
func NewHandler(svc ReportService) *Handler {
	return &Handler{service: svc}
}

// ExportReport handles GET /reports/:report
// @Summary Download a list export
// @Description Without format the rows are returned as JSON
// @Tags Reports
// @Produce json,text/csv,application/pdf
// @Param report path string true "attendees, venues or events"
// @Param format query string false "csv, excel or pdf"
// @Success 200 {file} file
// @Failure 400 {object} apperror.Payload
// @Failure 503 {object} apperror.Payload
// @Router /reports/{report} [get]
func (h *Handler) ExportReport(c *gin.Context) {
	reportType := strings.ToLower(c.Param("report"))
	if !ValidReportType(reportType) {
		apperror.Respond(c, apperror.Validation("invalid_report", "report must be attendees, venues or events"))
		return
	}

	format := strings.ToLower(c.Query("format"))
	if format == "" {
		data, err := h.service.GetReport(c.Request.Context(), reportType)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": data})
		return
	}

	out, fname, mime, err := h.service.ExportReport(c.Request.Context(), reportType, format)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fname))
	c.Data(http.StatusOK, mime, out)
}
