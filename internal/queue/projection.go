package queue

import "tulook/internal/models"

// BusyThreshold is the waiting count above which a barber is shown as busy.
const BusyThreshold = 3

// Availability is the derived wait state of one barber.
type Availability struct {
	Barber      string `json:"barbero"`
	Waiting     int    `json:"enEspera"`
	Serving     bool   `json:"atendiendo"`
	WaitMinutes int    `json:"minutosEspera"`
	Busy        bool   `json:"ocupado"`
}

// AvailabilityFor derives the barber's wait state. Entries of other barbers
// or outside {waiting, serving} are ignored. Only waiting entries add
// minutes; the customer in the chair is already being attended.
func AvailabilityFor(barber string, entries []models.QueueEntry) Availability {
	a := Availability{Barber: barber}
	for _, e := range entries {
		if e.Barber != barber {
			continue
		}
		switch e.Status {
		case models.StatusWaiting:
			a.Waiting++
			a.WaitMinutes += e.EstimatedMinutes
		case models.StatusServing:
			a.Serving = true
		}
	}
	a.Busy = a.Waiting > BusyThreshold
	return a
}

// CountByBarber returns the availability of every catalog barber, in catalog order.
func CountByBarber(entries []models.QueueEntry) []Availability {
	out := make([]Availability, 0, len(models.Barbers))
	for _, b := range models.Barbers {
		out = append(out, AvailabilityFor(b.Name, entries))
	}
	return out
}

// BoardRow is one line of the wait board.
type BoardRow struct {
	Position     int                    `json:"posicion"`
	ID           string                 `json:"id"`
	Customer     string                 `json:"cliente"`
	Barber       string                 `json:"barbero"`
	Service      models.ServiceCategory `json:"servicio"`
	ServiceLabel string                 `json:"servicioNombre"`
	Status       models.EntryStatus     `json:"estado"`
	Serving      bool                   `json:"enElSillon"`
}

// Board is the global wait board.
type Board struct {
	Rows        []BoardRow `json:"filas"`
	Waiting     int        `json:"enEspera"`
	WaitMinutes int        `json:"minutosEspera"`
}

// BuildBoard orders waiting and serving entries by arrival and numbers them
// from 1. Totals follow the same rule as AvailabilityFor.
func BuildBoard(entries []models.QueueEntry) Board {
	live := BoardFilter.Apply(entries)
	b := Board{Rows: make([]BoardRow, 0, len(live))}
	for i, e := range live {
		b.Rows = append(b.Rows, BoardRow{
			Position:     i + 1,
			ID:           e.ID,
			Customer:     e.Customer,
			Barber:       e.Barber,
			Service:      e.Service,
			ServiceLabel: e.ServiceLabel(),
			Status:       e.Status,
			Serving:      e.Status == models.StatusServing,
		})
		if e.Status == models.StatusWaiting {
			b.Waiting++
			b.WaitMinutes += e.EstimatedMinutes
		}
	}
	return b
}
