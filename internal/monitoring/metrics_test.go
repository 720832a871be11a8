package monitoring

import (
	"context"
	"testing"
	"time"

	"tulook/internal/models"
	"tulook/internal/queue"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestObserveSetsGauges(t *testing.T) {
	now := time.Now().UTC()
	Observe([]models.QueueEntry{
		{ID: "1", Barber: "Lautaro", Status: models.StatusServing, EstimatedMinutes: 30, ArrivedAt: now},
		{ID: "2", Barber: "Lautaro", Status: models.StatusWaiting, EstimatedMinutes: 15, ArrivedAt: now},
		{ID: "3", Barber: "Lautaro", Status: models.StatusWaiting, EstimatedMinutes: 45, ArrivedAt: now},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(queueWaiting.WithLabelValues("Lautaro")))
	assert.Equal(t, 60.0, testutil.ToFloat64(queueWaitMinutes.WithLabelValues("Lautaro")))
	assert.Equal(t, 1.0, testutil.ToFloat64(queueServing.WithLabelValues("Lautaro")))
	assert.Equal(t, 0.0, testutil.ToFloat64(queueWaiting.WithLabelValues("Julián")))
}

func TestRunFollowsHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := queue.NewHub()
	go hub.Run(ctx)

	m := NewMonitor(hub, zap.NewNop())
	go m.Run(ctx)

	require.NoError(t, hub.Publish(ctx, []models.QueueEntry{
		{ID: "1", Barber: "Gonzalo", Status: models.StatusWaiting, EstimatedMinutes: 30, ArrivedAt: time.Now()},
	}))

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(queueWaitMinutes.WithLabelValues("Gonzalo")) == 30
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTrackQueueOperation(t *testing.T) {
	m := NewMonitor(queue.NewHub(), zap.NewNop())
	before := testutil.ToFloat64(queueOperations.WithLabelValues("register", "success"))
	m.TrackQueueOperation("register", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(queueOperations.WithLabelValues("register", "success")))
}
