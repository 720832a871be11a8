package handlers

import (
	"errors"
	"net/http"

	"tulook/internal/geo"
	"tulook/internal/models"
	"tulook/internal/queue"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRequest is a walk-in joining a barber's line.
type RegisterRequest struct {
	Customer string                 `json:"cliente" example:"Martín"`
	Barber   string                 `json:"barbero" example:"Gonzalo"`
	Service  models.ServiceCategory `json:"servicio" example:"corte"`
	Lat      *float64               `json:"lat,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Lng      *float64               `json:"lng,omitempty" binding:"omitempty,gte=-180,lte=180"`
}

// RegisterResponse is the new ticket and the payment step that follows.
type RegisterResponse struct {
	Message  string            `json:"message" example:"¡Anotado!"`
	Entry    models.QueueEntry `json:"ticket"`
	Checkout CheckoutResponse  `json:"checkout"`
}

// GetBoard
// @Summary		Global wait board
// @Tags			queue
// @Produce		json
// @Success		200	{object}	queue.Board
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue/board [get]
func (h *Handler) GetBoard(c *gin.Context) {
	live, err := h.queue.List(c.Request.Context(), queue.BoardFilter)
	if err != nil {
		h.queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, queue.BuildBoard(live))
}

// Register
// @Summary		Join a barber's line
// @Description	Creates a waiting ticket. Minutes and price are fixed at this moment. When the geofence is on, lat/lng must be within the venue radius.
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			request	body		RegisterRequest	true	"Registration"
// @Success		201		{object}	RegisterResponse
// @Failure		400		{object}	response.ErrorResponse			"VALIDATION_ERROR, EMPTY_NAME, NAME_TOO_LONG, UNKNOWN_BARBER, UNKNOWN_SERVICE"
// @Failure		403		{object}	response.GeofenceErrorResponse	"OUT_OF_RANGE, NO_LOCATION"
// @Failure		409		{object}	response.ErrorResponse			"PRICE_NOT_CONFIGURED"
// @Failure		429		{object}	response.ErrorResponse			"RATE_LIMITED"
// @Failure		500		{object}	response.ErrorResponse			"DB_ERROR"
// @Router			/api/queue [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Datos inválidos",
			Details: err.Error(),
		})
		return
	}

	// The form is checked before the customer's location.
	reg, err := queue.Registration{
		Customer: req.Customer,
		Barber:   req.Barber,
		Service:  req.Service,
	}.Validate()
	if err != nil {
		h.track("register", err)
		h.queueError(c, err)
		return
	}

	if h.fence != nil && !h.checkFence(c, req) {
		h.track("register", errors.New("geofence"))
		return
	}

	entry, err := h.queue.Register(c.Request.Context(), reg, h.settings.Pricing())
	h.track("register", err)
	if err != nil {
		h.queueError(c, err)
		return
	}

	h.log.Info("customer registered",
		zap.String("id", entry.ID),
		zap.String("barber", entry.Barber),
		zap.String("service", string(entry.Service)))

	c.JSON(http.StatusCreated, RegisterResponse{
		Message:  "¡Anotado!",
		Entry:    entry,
		Checkout: h.checkout(entry),
	})
}

func (h *Handler) checkFence(c *gin.Context, req RegisterRequest) bool {
	var p *geo.Point
	if req.Lat != nil && req.Lng != nil {
		p = &geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	}

	distance, err := h.fence.Check(p)
	if err == nil {
		return true
	}

	body := response.GeofenceErrorResponse{
		DirectionsURL: h.fence.DirectionsURL,
		Retry:         true,
	}
	switch {
	case errors.Is(err, geo.ErrNoLocation):
		body.ErrorResponse = response.ErrorResponse{
			Code:    "NO_LOCATION",
			Message: "Activa tu ubicación para anotarte en la fila",
		}
	default:
		body.ErrorResponse = response.ErrorResponse{
			Code:    "OUT_OF_RANGE",
			Message: "Tenés que estar en la barbería para anotarte",
		}
		body.DistanceMeters = &distance
	}
	c.JSON(http.StatusForbidden, body)
	return false
}
