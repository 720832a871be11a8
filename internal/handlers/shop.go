package handlers

import (
	"net/http"

	"tulook/internal/models"
	"tulook/internal/queue"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ServiceItem is a service with its current price.
type ServiceItem struct {
	Category models.ServiceCategory `json:"categoria"`
	Label    string                 `json:"nombre"`
	Minutes  int                    `json:"minutos"`
	Price    decimal.Decimal        `json:"precio" swaggertype:"string" example:"8000"`
}

// BarberItem is a barber card: static metadata plus the derived wait state.
type BarberItem struct {
	models.Barber
	Availability queue.Availability `json:"disponibilidad"`
}

// WisdomResponse carries the stylist wisdom message.
type WisdomResponse struct {
	Barber  string `json:"barbero"`
	Message string `json:"mensaje"`
}

// GetShop
// @Summary		Shop information
// @Tags			shop
// @Produce		json
// @Success		200	{object}	models.Shop
// @Router			/api/shop [get]
func (h *Handler) GetShop(c *gin.Context) {
	c.JSON(http.StatusOK, models.ShopInfo)
}

// GetServices
// @Summary		Services with current prices
// @Tags			shop
// @Produce		json
// @Success		200	{array}	ServiceItem
// @Router			/api/services [get]
func (h *Handler) GetServices(c *gin.Context) {
	pricing := h.settings.Pricing()
	items := make([]ServiceItem, 0, len(models.Services))
	for _, s := range models.Services {
		items = append(items, ServiceItem{
			Category: s.Category,
			Label:    s.Label,
			Minutes:  s.Minutes,
			Price:    pricing[s.Category],
		})
	}
	c.JSON(http.StatusOK, items)
}

// GetBarbers
// @Summary		Barbers with their wait state
// @Tags			barbers
// @Produce		json
// @Success		200	{array}		BarberItem
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/barbers [get]
func (h *Handler) GetBarbers(c *gin.Context) {
	live, err := h.queue.List(c.Request.Context(), queue.BoardFilter)
	if err != nil {
		h.queueError(c, err)
		return
	}

	items := make([]BarberItem, 0, len(models.Barbers))
	for _, b := range models.Barbers {
		items = append(items, BarberItem{Barber: b, Availability: queue.AvailabilityFor(b.Name, live)})
	}
	c.JSON(http.StatusOK, items)
}

// GetBarber
// @Summary		One barber with its wait state
// @Tags			barbers
// @Produce		json
// @Param			name	path		string	true	"Barber name"
// @Success		200		{object}	BarberItem
// @Failure		404		{object}	response.ErrorResponse	"BARBER_NOT_FOUND"
// @Failure		500		{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/barbers/{name} [get]
func (h *Handler) GetBarber(c *gin.Context) {
	barber, ok := h.lookupBarber(c)
	if !ok {
		return
	}

	live, err := h.queue.List(c.Request.Context(), queue.BarberFilter(barber.Name))
	if err != nil {
		h.queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, BarberItem{Barber: barber, Availability: queue.AvailabilityFor(barber.Name, live)})
}

// GetWisdom
// @Summary		Stylist wisdom
// @Description	Short encouragement about waiting for the barber. Never fails; falls back to a fixed message.
// @Tags			barbers
// @Produce		json
// @Param			name	path		string	true	"Barber name"
// @Success		200		{object}	WisdomResponse
// @Failure		404		{object}	response.ErrorResponse	"BARBER_NOT_FOUND"
// @Router			/api/barbers/{name}/wisdom [get]
func (h *Handler) GetWisdom(c *gin.Context) {
	barber, ok := h.lookupBarber(c)
	if !ok {
		return
	}

	// A failed read only degrades the prompt to an empty line.
	live, err := h.queue.List(c.Request.Context(), queue.BarberFilter(barber.Name))
	if err != nil {
		h.log.Warn("wisdom availability", zap.Error(err))
	}
	msg := h.wisdom.Wisdom(c.Request.Context(), barber, queue.AvailabilityFor(barber.Name, live))
	c.JSON(http.StatusOK, WisdomResponse{Barber: barber.Name, Message: msg})
}

func (h *Handler) lookupBarber(c *gin.Context) (models.Barber, bool) {
	barber, ok := models.LookupBarber(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "BARBER_NOT_FOUND",
			Message: "Barbero no encontrado",
		})
	}
	return barber, ok
}
