package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tulook/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const publishTimeout = 5 * time.Second

// Notifier tells other service instances that the queue changed.
type Notifier interface {
	Announce(ctx context.Context) error
}

// Store is the single source of truth for queue entries. Every write is
// followed by a publish of the live set on the hub.
type Store struct {
	db       *gorm.DB
	hub      *Hub
	log      *zap.Logger
	notifier Notifier
	now      func() time.Time

	mu          sync.Mutex
	lastArrival time.Time

	// pubMu keeps read-then-publish atomic so an older live set never
	// overwrites a newer one.
	pubMu sync.Mutex
}

func NewStore(db *gorm.DB, hub *Hub, log *zap.Logger) *Store {
	return &Store{
		db:  db,
		hub: hub,
		log: log,
		now: time.Now,
	}
}

// SetNotifier enables cross-instance change announcements.
func (s *Store) SetNotifier(n Notifier) {
	s.notifier = n
}

// Hub returns the hub the store publishes on.
func (s *Store) Hub() *Hub {
	return s.hub
}

// Load primes the arrival clock from the database and publishes the live set.
func (s *Store) Load(ctx context.Context) error {
	var newest models.QueueEntry
	err := s.db.WithContext(ctx).Order("arrived_at DESC").Limit(1).Find(&newest).Error
	if err != nil {
		return fmt.Errorf("load newest entry: %w", err)
	}
	s.mu.Lock()
	if newest.ArrivedAt.After(s.lastArrival) {
		s.lastArrival = newest.ArrivedAt.UTC()
	}
	s.mu.Unlock()
	return s.Refresh(ctx)
}

func (s *Store) nextArrival() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.now().UTC().Truncate(time.Microsecond)
	if !t.After(s.lastArrival) {
		t = s.lastArrival.Add(time.Microsecond)
	}
	s.lastArrival = t
	return t
}

// Create inserts e, assigning its id, arrival time and initial states.
func (s *Store) Create(ctx context.Context, e *models.QueueEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = models.StatusWaiting
	}
	if e.Payment == "" {
		e.Payment = models.PaymentUnpaid
	}
	e.ArrivedAt = s.nextArrival()
	e.UpdatedAt = e.ArrivedAt

	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	s.changed(ctx)
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (models.QueueEntry, error) {
	var e models.QueueEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return e, ErrNotFound
	}
	if err != nil {
		return e, fmt.Errorf("get entry %s: %w", id, err)
	}
	return e, nil
}

// Live returns every entry that is not finished, ordered by arrival.
func (s *Store) Live(ctx context.Context) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	err := s.db.WithContext(ctx).
		Where("status <> ?", models.StatusDone).
		Order("arrived_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load live entries: %w", err)
	}
	return entries, nil
}

// List runs f against the database. Without statuses it lists every
// unfinished entry.
func (s *Store) List(ctx context.Context, f Filter) ([]models.QueueEntry, error) {
	q := s.db.WithContext(ctx).Model(&models.QueueEntry{})
	if f.Barber != "" {
		q = q.Where("barber = ?", f.Barber)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	} else {
		q = q.Where("status <> ?", models.StatusDone)
	}

	var entries []models.QueueEntry
	if err := q.Order("arrived_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Serve moves a waiting entry to the chair.
func (s *Store) Serve(ctx context.Context, id string) error {
	return s.transition(ctx, id, "status",
		[]string{string(models.StatusWaiting)}, string(models.StatusServing))
}

// Finish closes any unfinished entry.
func (s *Store) Finish(ctx context.Context, id string) error {
	return s.transition(ctx, id, "status",
		[]string{string(models.StatusWaiting), string(models.StatusServing)}, string(models.StatusDone))
}

// MarkProcessing records that the customer started a digital transfer.
func (s *Store) MarkProcessing(ctx context.Context, id string) error {
	return s.transition(ctx, id, "payment",
		[]string{string(models.PaymentUnpaid)}, string(models.PaymentProcessing))
}

// MarkPaid confirms a transfer that was processing.
func (s *Store) MarkPaid(ctx context.Context, id string) error {
	return s.transition(ctx, id, "payment",
		[]string{string(models.PaymentProcessing)}, string(models.PaymentPaid))
}

func (s *Store) transition(ctx context.Context, id, column string, from []string, to string) error {
	res := s.db.WithContext(ctx).
		Model(&models.QueueEntry{}).
		Where("id = ? AND "+column+" IN ?", id, from).
		Updates(map[string]any{column: to, "updated_at": s.now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("update %s of %s: %w", column, id, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}
	s.changed(ctx)
	return nil
}

// Delete removes an entry outright.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.QueueEntry{})
	if res.Error != nil {
		return fmt.Errorf("delete entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.changed(ctx)
	return nil
}

// PurgeFinished deletes finished entries last touched before the cutoff.
func (s *Store) PurgeFinished(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", models.StatusDone, before.UTC()).
		Delete(&models.QueueEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge finished entries: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Refresh re-reads the live set and publishes it without announcing.
func (s *Store) Refresh(ctx context.Context) error {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	entries, err := s.Live(ctx)
	if err != nil {
		return err
	}
	return s.hub.Publish(ctx, entries)
}

// changed publishes after a successful write. The write is committed, so the
// publish outlives a cancelled request. Failures are logged only.
func (s *Store) changed(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.Refresh(ctx); err != nil {
		s.log.Error("publish live queue", zap.Error(err))
	}
	if s.notifier != nil {
		if err := s.notifier.Announce(ctx); err != nil {
			s.log.Warn("announce queue change", zap.Error(err))
		}
	}
}
