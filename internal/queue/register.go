package queue

import (
	"context"
	"strings"
	"unicode/utf8"

	"tulook/internal/models"
)

// MaxNameLength caps the customer name, in runes.
const MaxNameLength = 60

// Registration is a walk-in request to join a barber's line.
type Registration struct {
	Customer string
	Barber   string
	Service  models.ServiceCategory
}

// Validate checks the request against the catalog and returns it normalized.
func (r Registration) Validate() (Registration, error) {
	r.Customer = strings.TrimSpace(r.Customer)
	if r.Customer == "" {
		return r, ErrEmptyName
	}
	if utf8.RuneCountInString(r.Customer) > MaxNameLength {
		return r, ErrNameTooLong
	}
	if _, ok := models.LookupBarber(r.Barber); !ok {
		return r, ErrUnknownBarber
	}
	if _, ok := models.LookupService(r.Service); !ok {
		return r, ErrUnknownService
	}
	return r, nil
}

// Register validates r and creates a waiting, unpaid entry whose minutes and
// price are copied from the catalog and the given pricing.
func (s *Store) Register(ctx context.Context, r Registration, pricing models.Pricing) (models.QueueEntry, error) {
	r, err := r.Validate()
	if err != nil {
		return models.QueueEntry{}, err
	}
	svc, _ := models.LookupService(r.Service)
	price, ok := pricing[r.Service]
	if !ok {
		return models.QueueEntry{}, ErrPriceNotConfigured
	}

	e := models.QueueEntry{
		Customer:         r.Customer,
		Barber:           r.Barber,
		Service:          r.Service,
		EstimatedMinutes: svc.Minutes,
		Price:            price,
		Status:           models.StatusWaiting,
		Payment:          models.PaymentUnpaid,
	}
	if err := s.Create(ctx, &e); err != nil {
		return models.QueueEntry{}, err
	}
	return e, nil
}
