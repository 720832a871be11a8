package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// QueueMaintainer is the part of the queue store the scheduler drives.
type QueueMaintainer interface {
	PurgeFinished(ctx context.Context, before time.Time) (int64, error)
	Refresh(ctx context.Context) error
}

const (
	purgeSpec   = "0 0 4 * * *"
	refreshSpec = "0 */5 * * * *"
	jobTimeout  = time.Minute
)

// SettingsLoader re-reads stored settings.
type SettingsLoader interface {
	Load(ctx context.Context) error
}

// Planner runs periodic queue maintenance.
type Planner struct {
	queue     QueueMaintainer
	settings  SettingsLoader
	retention time.Duration
	log       *zap.Logger
	now       func() time.Time
}

// NewPlanner builds the planner. settings may be nil.
func NewPlanner(q QueueMaintainer, settings SettingsLoader, retention time.Duration, log *zap.Logger) *Planner {
	return &Planner{queue: q, settings: settings, retention: retention, log: log, now: time.Now}
}

// PurgeFinished deletes finished entries older than the retention window.
func (p *Planner) PurgeFinished() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	threshold := p.now().Add(-p.retention)
	n, err := p.queue.PurgeFinished(ctx, threshold)
	if err != nil {
		p.log.Error("purge finished entries", zap.Error(err))
		return
	}
	p.log.Info("finished entries purged", zap.Int64("deleted", n), zap.Time("before", threshold))
}

// Resync republishes the live queue and reloads settings so this process
// catches up with writes made elsewhere.
func (p *Planner) Resync() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := p.queue.Refresh(ctx); err != nil {
		p.log.Warn("resync live queue", zap.Error(err))
	}
	if p.settings != nil {
		if err := p.settings.Load(ctx); err != nil {
			p.log.Warn("reload settings", zap.Error(err))
		}
	}
}

// Start registers the jobs and starts the cron scheduler. Stop the returned
// scheduler on shutdown.
func (p *Planner) Start() (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(purgeSpec, p.PurgeFinished); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(refreshSpec, p.Resync); err != nil {
		return nil, err
	}

	c.Start()
	p.log.Info("cron scheduler started")
	return c, nil
}
