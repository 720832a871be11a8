package monitoring

import (
	"context"
	"runtime"
	"time"

	"tulook/internal/models"
	"tulook/internal/queue"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	queueWaiting = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "barbershop_queue_waiting",
			Help: "Customers waiting per barber",
		},
		[]string{"barber"},
	)

	queueWaitMinutes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "barbershop_queue_wait_minutes",
			Help: "Estimated wait in minutes per barber",
		},
		[]string{"barber"},
	)

	queueServing = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "barbershop_queue_serving",
			Help: "1 when the barber has a customer in the chair",
		},
		[]string{"barber"},
	)

	queueOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_queue_operations_total",
			Help: "Total queue operations",
		},
		[]string{"operation", "status"},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "barbershop_active_goroutines",
			Help: "Current number of goroutines",
		},
	)
)

type Monitor struct {
	hub *queue.Hub
	log *zap.Logger
}

func NewMonitor(hub *queue.Hub, log *zap.Logger) *Monitor {
	return &Monitor{hub: hub, log: log}
}

// Run keeps the per-barber gauges in line with the live queue until ctx is
// cancelled or the hub stops.
func (m *Monitor) Run(ctx context.Context) {
	sub, err := m.hub.Subscribe(ctx, queue.Filter{})
	if err != nil {
		m.log.Warn("metrics subscription", zap.Error(err))
		return
	}
	defer sub.Close()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-sub.C():
			if !ok {
				return
			}
			Observe(snap.Entries)
		case <-ticker.C:
			goroutineCount.Set(float64(runtime.NumGoroutine()))
		}
	}
}

// Observe sets the per-barber gauges from entries.
func Observe(entries []models.QueueEntry) {
	for _, a := range queue.CountByBarber(entries) {
		queueWaiting.WithLabelValues(a.Barber).Set(float64(a.Waiting))
		queueWaitMinutes.WithLabelValues(a.Barber).Set(float64(a.WaitMinutes))
		serving := 0.0
		if a.Serving {
			serving = 1
		}
		queueServing.WithLabelValues(a.Barber).Set(serving)
	}
}

// TrackQueueOperation counts one handler outcome.
func (m *Monitor) TrackQueueOperation(operation, status string) {
	queueOperations.WithLabelValues(operation, status).Inc()
}
