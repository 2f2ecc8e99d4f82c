package attendee

import (
	"net/http"
	"strconv"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/eventhub/event-management-backend/middleware"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ListAttendees handles GET /attendees
// @Summary List attendees
// @Tags Attendees
// @Produce json
// @Success 200 {array} Attendee
// @Failure 503 {object} apperror.Payload
// @Router /attendees [get]
func (h *Handler) ListAttendees(c *gin.Context) {
	attendees, err := h.Service.ListAttendees(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, attendees)
}

// CreateAttendee handles POST /attendees
// @Summary Create attendee
// @Tags Attendees
// @Accept json
// @Produce json
// @Param attendee body CreateAttendeeRequest true "Attendee"
// @Success 200 {object} Attendee
// @Failure 400 {object} apperror.Payload
// @Failure 422 {object} apperror.Payload
// @Failure 503 {object} apperror.Payload
// @Router /attendees [post]
func (h *Handler) CreateAttendee(c *gin.Context) {
	var req CreateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindError(err))
		return
	}

	a, err := h.Service.CreateAttendee(c.Request.Context(), req, middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAttendee handles DELETE /attendees/:id
// @Summary Delete attendee
// @Description Returns the deleted row, or 204 when no attendee has the id
// @Tags Attendees
// @Produce json
// @Param id path int true "Attendee ID"
// @Success 200 {object} Attendee
// @Success 204
// @Failure 400 {object} apperror.Payload
// @Router /attendees/{id} [delete]
func (h *Handler) DeleteAttendee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		apperror.Respond(c, apperror.Validation("invalid_id", "invalid attendee ID"))
		return
	}

	a, err := h.Service.DeleteAttendee(c.Request.Context(), id, middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if a == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, a)
}
