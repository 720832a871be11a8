package handlers

import (
	"context"
	"net/http"

	"tulook/internal/models"
	"tulook/internal/queue"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminQueueResponse lists unfinished tickets with the per-barber summary.
type AdminQueueResponse struct {
	Entries []models.QueueEntry  `json:"fila"`
	Counts  []queue.Availability `json:"resumen"`
}

// AdminListQueue
// @Summary		Unfinished tickets
// @Tags			admin
// @Produce		json
// @Param			barber	query		string	false	"Barber name"
// @Security		BearerAuth
// @Success		200		{object}	AdminQueueResponse
// @Failure		400		{object}	response.ErrorResponse	"UNKNOWN_BARBER"
// @Failure		401		{object}	response.ErrorResponse	"INVALID_TOKEN"
// @Failure		500		{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/admin/queue [get]
func (h *Handler) AdminListQueue(c *gin.Context) {
	barber := c.Query("barber")
	if barber != "" {
		if _, ok := models.LookupBarber(barber); !ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "UNKNOWN_BARBER",
				Message: "Barbero desconocido",
			})
			return
		}
	}

	live, err := h.queue.List(c.Request.Context(), queue.Filter{})
	if err != nil {
		h.queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, AdminQueueResponse{
		Entries: queue.Filter{Barber: barber}.Apply(live),
		Counts:  queue.CountByBarber(live),
	})
}

// ServeEntry
// @Summary		Call the customer to the chair
// @Tags			admin
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Router			/api/admin/queue/{id}/serve [post]
func (h *Handler) ServeEntry(c *gin.Context) {
	h.adminAction(c, "serve", h.queue.Serve, "Cliente en el sillón")
}

// FinishEntry
// @Summary		Finish a ticket
// @Tags			admin
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Router			/api/admin/queue/{id}/finish [post]
func (h *Handler) FinishEntry(c *gin.Context) {
	h.adminAction(c, "finish", h.queue.Finish, "Servicio finalizado")
}

// ConfirmPayment
// @Summary		Confirm a digital transfer
// @Tags			admin
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Router			/api/admin/queue/{id}/paid [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	h.adminAction(c, "confirm_payment", h.queue.MarkPaid, "Pago confirmado")
}

// DeleteEntry
// @Summary		Remove a ticket
// @Tags			admin
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/admin/queue/{id} [delete]
func (h *Handler) DeleteEntry(c *gin.Context) {
	h.adminAction(c, "delete", h.queue.Delete, "Turno eliminado")
}

func (h *Handler) adminAction(c *gin.Context, op string, action func(context.Context, string) error, msg string) {
	id := c.Param("id")
	err := action(c.Request.Context(), id)
	h.track(op, err)
	if err != nil {
		h.queueError(c, err)
		return
	}
	h.log.Info("admin action", zap.String("operation", op), zap.String("id", id))
	c.JSON(http.StatusOK, response.SuccessResponse{Message: msg})
}
