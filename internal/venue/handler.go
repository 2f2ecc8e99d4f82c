package venue

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

// ListVenues handles GET /venues
// @Summary List venues
// @Tags Venues
// @Produce json
// @Success 200 {array} Venue
// @Failure 503 {object} apperror.Payload
// @Router /venues [get]
func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.Service.ListVenues(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

// CreateVenue handles POST /venues
// @Summary Create venue
// @Description Capacity must be at least 10
// @Tags Venues
// @Accept json
// @Produce json
// @Param venue body CreateVenueRequest true "Venue"
// @Success 200 {object} Venue
// @Failure 400 {object} apperror.Payload
// @Failure 503 {object} apperror.Payload
// @Router /venues [post]
func (h *Handler) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindError(err))
		return
	}

	v, err := h.Service.CreateVenue(c.Request.Context(), req, middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
