package queue

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tulook/internal/models"
	"tulook/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	t.Cleanup(func() {
		cancel()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewStore(db, hub, zap.NewNop())
}

func testPricing() models.Pricing {
	return models.Pricing{
		models.ServiceCut:   decimal.NewFromInt(8000),
		models.ServiceBeard: decimal.NewFromInt(4000),
		models.ServiceBoth:  decimal.NewFromInt(10000),
	}
}

func next(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.C():
		require.True(t, ok, "subscription closed")
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received")
	}
	return Snapshot{}
}

func entry(id, barber string, status models.EntryStatus, minutes int, at time.Time) models.QueueEntry {
	return models.QueueEntry{
		ID:               id,
		Customer:         "cliente " + id,
		Barber:           barber,
		Service:          models.ServiceCut,
		EstimatedMinutes: minutes,
		Price:            decimal.NewFromInt(8000),
		Status:           status,
		Payment:          models.PaymentUnpaid,
		ArrivedAt:        at,
	}
}
