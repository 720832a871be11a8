package ws

import (
	"net/http"
	"time"

	"tulook/internal/models"
	"tulook/internal/queue"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	ViewBoard  = "board"
	ViewBarber = "barber"
	ViewAdmin  = "admin"
)

// BarberView is the live state of one barber's line.
type BarberView struct {
	Availability queue.Availability  `json:"disponibilidad"`
	Entries      []models.QueueEntry `json:"fila"`
	At           time.Time           `json:"actualizado"`
}

// AdminView lists every unfinished entry, optionally for one barber.
type AdminView struct {
	Barber  string               `json:"barbero,omitempty"`
	Entries []models.QueueEntry  `json:"fila"`
	Counts  []queue.Availability `json:"resumen"`
	At      time.Time            `json:"actualizado"`
}

func renderBoard(snap queue.Snapshot) interface{} {
	return queue.BuildBoard(snap.Entries)
}

func renderBarber(barber string) Renderer {
	return func(snap queue.Snapshot) interface{} {
		return BarberView{
			Availability: queue.AvailabilityFor(barber, snap.Entries),
			Entries:      snap.Entries,
			At:           snap.At,
		}
	}
}

// renderAdmin counts over every live entry so the summary matches the
// barber cards; only the listed entries follow the barber filter.
func renderAdmin(barber string) Renderer {
	return func(snap queue.Snapshot) interface{} {
		return AdminView{
			Barber:  barber,
			Entries: queue.Filter{Barber: barber}.Apply(snap.Entries),
			Counts:  queue.CountByBarber(snap.Entries),
			At:      snap.At,
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades connections and attaches them to hub subscriptions.
type Handler struct {
	hub *queue.Hub
	log *zap.Logger
}

func NewHandler(hub *queue.Hub, log *zap.Logger) *Handler {
	return &Handler{hub: hub, log: log}
}

// PublicQueue streams the wait board or a barber's line.
// @Summary		Live queue view
// @Description	WebSocket. view=board streams the global board, view=barber&barber=<name> one barber's line.
// @Tags			queue
// @Param			view	query	string	true	"board | barber"
// @Param			barber	query	string	false	"Barber name, required for view=barber"
// @Success		101
// @Failure		400	{object}	response.ErrorResponse	"INVALID_VIEW, UNKNOWN_BARBER"
// @Router			/api/queue/ws [get]
func (h *Handler) PublicQueue(c *gin.Context) {
	switch view := c.DefaultQuery("view", ViewBoard); view {
	case ViewBoard:
		h.serve(c, ViewBoard, queue.BoardFilter, renderBoard)
	case ViewBarber:
		barber := c.Query("barber")
		if _, ok := models.LookupBarber(barber); !ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "UNKNOWN_BARBER",
				Message: "Barbero desconocido",
			})
			return
		}
		h.serve(c, ViewBarber, queue.BarberFilter(barber), renderBarber(barber))
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_VIEW",
			Message: "Vista inválida",
			Details: "view debe ser board o barber",
		})
	}
}

// AdminQueue streams every unfinished entry.
// @Summary		Live admin view
// @Description	WebSocket with every unfinished entry, optionally filtered by barber. The access token may be passed as ?token=.
// @Tags			admin
// @Param			barber	query	string	false	"Barber name"
// @Security		BearerAuth
// @Success		101
// @Failure		400	{object}	response.ErrorResponse	"UNKNOWN_BARBER"
// @Failure		401	{object}	response.ErrorResponse	"INVALID_TOKEN"
// @Router			/api/admin/ws [get]
func (h *Handler) AdminQueue(c *gin.Context) {
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
	h.serve(c, ViewAdmin, queue.BoardFilter, renderAdmin(barber))
}

func (h *Handler) serve(c *gin.Context, view string, f queue.Filter, render Renderer) {
	sub, err := h.hub.Subscribe(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
			Code:    "QUEUE_UNAVAILABLE",
			Message: "La fila no está disponible en este momento",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Close()
		h.log.Warn("websocket upgrade", zap.Error(err))
		return
	}

	client := &Client{conn: conn, sub: sub, view: view, render: render, log: h.log}
	client.Serve()
}
