package event

import (
	"net/http"

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

// ListEvents handles GET /events
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {array} Event
// @Failure 503 {object} apperror.Payload
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /events
// @Summary Create event
// @Description date_time is ISO-8601; timestamps without an offset are UTC
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 200 {object} Event
// @Failure 400 {object} apperror.Payload
// @Failure 422 {object} apperror.Payload "unknown venue_id"
// @Failure 503 {object} apperror.Payload
// @Router /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindError(err))
		return
	}

	e, err := h.Service.CreateEvent(c.Request.Context(), req, middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
