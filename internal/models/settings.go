package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Keys of the singleton settings documents.
const (
	PricingDocument = "precios"
	AliasDocument   = "alias_barberos"
)

// Pricing maps every service category to its current price.
type Pricing map[ServiceCategory]decimal.Decimal

func DefaultPricing() Pricing {
	p := make(Pricing, len(Services))
	for _, s := range Services {
		p[s.Category] = s.DefaultPrice
	}
	return p
}

func (p Pricing) Clone() Pricing {
	out := make(Pricing, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// PayoutAliases maps a barber name to the alias customers transfer to.
type PayoutAliases map[string]string

func (a PayoutAliases) Clone() PayoutAliases {
	out := make(PayoutAliases, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// SettingsDocument stores one singleton document as JSON, written wholesale.
type SettingsDocument struct {
	Key       string         `gorm:"primaryKey;column:document_key;size:64"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
