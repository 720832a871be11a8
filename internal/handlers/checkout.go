package handlers

import (
	"errors"
	"net/http"

	"tulook/internal/models"
	"tulook/internal/payment"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutResponse is the payment step of a ticket.
type CheckoutResponse struct {
	TicketID     string               `json:"ticketId"`
	Customer     string               `json:"cliente"`
	Barber       string               `json:"barbero"`
	ServiceLabel string               `json:"servicio"`
	Price        decimal.Decimal      `json:"precio" swaggertype:"string" example:"10000"`
	Payment      models.PaymentStatus `json:"pagado"`
	// Alias to copy for a manual transfer; empty when the barber has none
	Alias string `json:"alias,omitempty"`
	// Digital transfer is offered only when an alias exists
	DigitalPayment bool `json:"pagoDigital"`
}

// TransferResponse carries the deep link to open the payment app.
type TransferResponse struct {
	Link    string               `json:"link"`
	Payment models.PaymentStatus `json:"pagado"`
}

func (h *Handler) checkout(e models.QueueEntry) CheckoutResponse {
	alias := h.settings.Alias(e.Barber)
	return CheckoutResponse{
		TicketID:       e.ID,
		Customer:       e.Customer,
		Barber:         e.Barber,
		ServiceLabel:   e.ServiceLabel(),
		Price:          e.Price,
		Payment:        e.Payment,
		Alias:          alias,
		DigitalPayment: alias != "",
	}
}

// GetCheckout
// @Summary		Payment step of a ticket
// @Tags			checkout
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Success		200	{object}	CheckoutResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/checkout/{id} [get]
func (h *Handler) GetCheckout(c *gin.Context) {
	entry, err := h.queue.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.checkout(entry))
}

// StartTransfer
// @Summary		Pay by digital transfer
// @Description	Marks the ticket as processing and returns the Mercado Pago deep link. Repeating the call while processing returns the same link.
// @Tags			checkout
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Success		200	{object}	TransferResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"NO_ALIAS, ALREADY_PAID, INVALID_TRANSITION"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/checkout/{id}/transfer [post]
func (h *Handler) StartTransfer(c *gin.Context) {
	ctx := c.Request.Context()
	entry, err := h.queue.Get(ctx, c.Param("id"))
	if err != nil {
		h.queueError(c, err)
		return
	}

	if entry.Payment == models.PaymentPaid {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "ALREADY_PAID",
			Message: "Este turno ya está pagado",
		})
		return
	}

	link, err := payment.TransferLink(h.settings.Alias(entry.Barber), entry.Price, payment.Reference(entry.Customer))
	if errors.Is(err, payment.ErrNoAlias) {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "NO_ALIAS",
			Message: "Este barbero no tiene alias cargado. Podés pagar en el local.",
		})
		return
	}
	if err != nil {
		h.queueError(c, err)
		return
	}

	if entry.Payment == models.PaymentUnpaid {
		err = h.queue.MarkProcessing(ctx, entry.ID)
		h.track("transfer", err)
		if err != nil {
			h.queueError(c, err)
			return
		}
	}

	h.log.Info("transfer started", zap.String("id", entry.ID), zap.String("barber", entry.Barber))
	c.JSON(http.StatusOK, TransferResponse{Link: link, Payment: models.PaymentProcessing})
}

// PayAtVenue
// @Summary		Pay at the venue
// @Description	Leaves the ticket pending; the place in line is already kept.
// @Tags			checkout
// @Produce		json
// @Param			id	path		string	true	"Ticket ID"
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/checkout/{id}/venue [post]
func (h *Handler) PayAtVenue(c *gin.Context) {
	if _, err := h.queue.Get(c.Request.Context(), c.Param("id")); err != nil {
		h.queueError(c, err)
		return
	}
	h.track("pay_at_venue", nil)
	c.JSON(http.StatusOK, response.SuccessResponse{
		Message: "Tu lugar ya está reservado en la fila",
	})
}
