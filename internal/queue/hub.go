package queue

import (
	"context"
	"sort"
	"sync"
	"time"

	"tulook/internal/models"
)

// Filter selects the part of the live queue a subscriber wants to see.
// Zero values match everything.
type Filter struct {
	Barber   string
	Statuses []models.EntryStatus
}

// Match reports whether e belongs to the filtered view.
func (f Filter) Match(e models.QueueEntry) bool {
	if f.Barber != "" && e.Barber != f.Barber {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if e.Status == s {
			return true
		}
	}
	return false
}

// Apply returns the matching entries as a new slice ordered by arrival.
func (f Filter) Apply(entries []models.QueueEntry) []models.QueueEntry {
	out := make([]models.QueueEntry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	sortByArrival(out)
	return out
}

// Common filters used by the views.
var (
	WaitingOrServing = []models.EntryStatus{models.StatusWaiting, models.StatusServing}
	BoardFilter      = Filter{Statuses: WaitingOrServing}
)

func BarberFilter(barber string) Filter {
	return Filter{Barber: barber, Statuses: WaitingOrServing}
}

// Snapshot is an immutable view of the queue. Every subscriber gets its own copy.
type Snapshot struct {
	Entries []models.QueueEntry
	At      time.Time
}

// Subscription is a scoped handle on a filtered view. Close must be called
// once the owner is done; it is safe to call more than once.
type Subscription struct {
	hub    *Hub
	filter Filter
	send   chan Snapshot
	once   sync.Once
}

// C delivers snapshots. The channel is closed when the subscription is
// released or the hub stops.
func (s *Subscription) C() <-chan Snapshot {
	return s.send
}

func (s *Subscription) Filter() Filter {
	return s.filter
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		select {
		case s.hub.unregister <- s:
		case <-s.hub.done:
		}
	})
}

// deliver replaces any snapshot the subscriber has not consumed yet. Only the
// hub goroutine sends, so after draining there is always room.
func (s *Subscription) deliver(snap Snapshot) {
	select {
	case s.send <- snap:
	default:
		select {
		case <-s.send:
		default:
		}
		s.send <- snap
	}
}

// Hub owns the live queue state and fans it out to subscribers.
type Hub struct {
	subs       map[*Subscription]struct{}
	register   chan *Subscription
	unregister chan *Subscription
	publish    chan []models.QueueEntry
	done       chan struct{}

	// last is only touched by the Run goroutine.
	last []models.QueueEntry
}

func NewHub() *Hub {
	return &Hub{
		subs:       make(map[*Subscription]struct{}),
		register:   make(chan *Subscription),
		unregister: make(chan *Subscription),
		publish:    make(chan []models.QueueEntry),
		done:       make(chan struct{}),
	}
}

// Run processes hub events until ctx is cancelled. On exit every open
// subscription channel is closed.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for s := range h.subs {
			close(s.send)
			delete(h.subs, s)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case s := <-h.register:
			h.subs[s] = struct{}{}
			s.deliver(h.snapshot(s.filter))
		case s := <-h.unregister:
			if _, ok := h.subs[s]; ok {
				delete(h.subs, s)
				close(s.send)
			}
		case entries := <-h.publish:
			h.last = entries
			for s := range h.subs {
				s.deliver(h.snapshot(s.filter))
			}
		}
	}
}

func (h *Hub) snapshot(f Filter) Snapshot {
	return Snapshot{Entries: f.Apply(h.last), At: time.Now().UTC()}
}

// Subscribe registers a filtered view. The current state is delivered
// immediately.
func (h *Hub) Subscribe(ctx context.Context, f Filter) (*Subscription, error) {
	s := &Subscription{
		hub:    h,
		filter: f,
		send:   make(chan Snapshot, 1),
	}
	select {
	case h.register <- s:
		return s, nil
	case <-h.done:
		return nil, ErrHubClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Publish replaces the live set. The slice must not be modified afterwards.
func (h *Hub) Publish(ctx context.Context, entries []models.QueueEntry) error {
	select {
	case h.publish <- entries:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sortByArrival(entries []models.QueueEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ArrivedAt.Equal(entries[j].ArrivedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].ArrivedAt.Before(entries[j].ArrivedAt)
	})
}
