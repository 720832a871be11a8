package handlers

import (
	"tulook/internal/auth"
	"tulook/internal/geo"
	"tulook/internal/monitoring"
	"tulook/internal/queue"
	"tulook/internal/settings"
	"tulook/internal/wisdom"

	"go.uber.org/zap"
)

// Handler serves the REST API.
type Handler struct {
	queue    *queue.Store
	settings *settings.Store
	gate     *auth.Gate
	wisdom   *wisdom.Service
	fence    *geo.Fence
	monitor  *monitoring.Monitor
	log      *zap.Logger
}

// Deps are the collaborators of Handler. A nil Fence disables the
// registration geofence.
type Deps struct {
	Queue    *queue.Store
	Settings *settings.Store
	Gate     *auth.Gate
	Wisdom   *wisdom.Service
	Fence    *geo.Fence
	Monitor  *monitoring.Monitor
	Log      *zap.Logger
}

func New(d Deps) *Handler {
	return &Handler{
		queue:    d.Queue,
		settings: d.Settings,
		gate:     d.Gate,
		wisdom:   d.Wisdom,
		fence:    d.Fence,
		monitor:  d.Monitor,
		log:      d.Log,
	}
}

func (h *Handler) track(operation string, err error) {
	if h.monitor == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	h.monitor.TrackQueueOperation(operation, status)
}
