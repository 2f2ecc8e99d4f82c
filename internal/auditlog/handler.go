package auditlog

import (
	"net/http"
	"strconv"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAuditLogs handles GET /audit-logs - newest entries first
// @Summary List audit logs
// @Description Recent create/delete audit entries, newest first
// @Tags AuditLog
// @Produce json
// @Param action query string false "Filter by action, e.g. EVENT_CREATED"
// @Param status query string false "Filter by status (success or failure)"
// @Param limit query int false "Maximum number of entries (default 50, max 500)"
// @Success 200 {array} AuditLog
// @Failure 400 {object} apperror.Payload
// @Failure 503 {object} apperror.Payload
// @Router /audit-logs [get]
func (h *Handler) GetAuditLogs(c *gin.Context) {
	filter := AuditLogFilter{
		Action: c.Query("action"),
		Status: c.Query("status"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			apperror.Respond(c, apperror.Validation("invalid_limit", "limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	logs, err := h.service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetAuditLogByID handles GET /audit-logs/:id
// @Summary Get audit log by ID
// @Tags AuditLog
// @Produce json
// @Param id path int true "Audit Log ID"
// @Success 200 {object} AuditLog
// @Failure 400 {object} apperror.Payload
// @Failure 404 {object} apperror.Payload
// @Router /audit-logs/{id} [get]
func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		apperror.Respond(c, apperror.Validation("invalid_id", "invalid audit log ID"))
		return
	}

	log, err := h.service.GetAuditLogByID(c.Request.Context(), uint(id))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if log == nil {
		apperror.Respond(c, apperror.NotFound("audit log not found"))
		return
	}

	c.JSON(http.StatusOK, log)
}
