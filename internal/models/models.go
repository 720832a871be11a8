package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a queue entry.
type EntryStatus string

const (
	StatusWaiting EntryStatus = "esperando"
	StatusServing EntryStatus = "atendiendo"
	StatusDone    EntryStatus = "finalizado"
)

// Live reports whether the entry still occupies a place in the queue.
func (s EntryStatus) Live() bool {
	return s == StatusWaiting || s == StatusServing
}

func (s EntryStatus) Valid() bool {
	return s.Live() || s == StatusDone
}

// PaymentStatus tracks how the customer settles the service.
type PaymentStatus string

const (
	PaymentUnpaid     PaymentStatus = "pendiente"
	PaymentProcessing PaymentStatus = "procesando"
	PaymentPaid       PaymentStatus = "pagado"
)

// QueueEntry is one customer's place in line.
//
// EstimatedMinutes and Price are snapshots taken at creation; later pricing
// changes never touch them.
type QueueEntry struct {
	ID               string          `gorm:"primaryKey;size:36" json:"id"`
	Customer         string          `gorm:"size:120;not null" json:"cliente"`
	Barber           string          `gorm:"size:64;index;not null" json:"barbero"`
	Service          ServiceCategory `gorm:"size:16;not null" json:"servicio"`
	EstimatedMinutes int             `gorm:"not null" json:"minutosEstimados"`
	Price            decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precio" swaggertype:"string" example:"8000"`
	Status           EntryStatus     `gorm:"size:16;index;not null" json:"estado"`
	Payment          PaymentStatus   `gorm:"size:16;not null" json:"pagado"`
	ArrivedAt        time.Time       `gorm:"index;not null" json:"fechaLlegada"` // server-assigned, strictly increasing
	UpdatedAt        time.Time       `json:"-"`
}

// ServiceLabel returns the human label of the entry's service.
func (e QueueEntry) ServiceLabel() string {
	if s, ok := LookupService(e.Service); ok {
		return s.Label
	}
	return string(e.Service)
}
