package queue

import "errors"

var (
	ErrNotFound           = errors.New("queue entry not found")
	ErrInvalidTransition  = errors.New("transition not allowed from current state")
	ErrEmptyName          = errors.New("customer name is empty")
	ErrNameTooLong        = errors.New("customer name is too long")
	ErrUnknownBarber      = errors.New("unknown barber")
	ErrUnknownService     = errors.New("unknown service category")
	ErrPriceNotConfigured = errors.New("price not configured for service")
	ErrHubClosed          = errors.New("queue hub stopped")
)
