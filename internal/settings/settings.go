package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tulook/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUnknownService = errors.New("unknown service category in pricing")
	ErrMissingPrice   = errors.New("every service category needs a price")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrUnknownBarber  = errors.New("unknown barber in payout aliases")
)

// Store keeps the pricing and payout alias documents. Reads are served from
// an in-memory copy that is replaced after every successful save.
type Store struct {
	db  *gorm.DB
	log *zap.Logger

	mu      sync.RWMutex
	pricing models.Pricing
	aliases models.PayoutAliases
}

func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{
		db:      db,
		log:     log,
		pricing: models.DefaultPricing(),
		aliases: models.PayoutAliases{},
	}
}

// Load reads both documents. A missing document keeps its defaults.
func (s *Store) Load(ctx context.Context) error {
	pricing := models.DefaultPricing()
	aliases := models.PayoutAliases{}

	if err := s.readDocument(ctx, models.PricingDocument, &pricing); err != nil {
		return err
	}
	if err := s.readDocument(ctx, models.AliasDocument, &aliases); err != nil {
		return err
	}

	s.mu.Lock()
	s.pricing = pricing
	s.aliases = aliases
	s.mu.Unlock()
	return nil
}

func (s *Store) readDocument(ctx context.Context, key string, dst any) error {
	var doc models.SettingsDocument
	err := s.db.WithContext(ctx).Where("document_key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Info("settings document missing, using defaults", zap.String("document", key))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(doc.Data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Pricing returns a copy of the current prices.
func (s *Store) Pricing() models.Pricing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pricing.Clone()
}

// Aliases returns a copy of the current payout aliases.
func (s *Store) Aliases() models.PayoutAliases {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aliases.Clone()
}

// Alias returns the barber's payout alias, empty when none is configured.
func (s *Store) Alias(barber string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aliases[barber]
}

// Validate checks a pricing and alias pair before it is saved.
func Validate(pricing models.Pricing, aliases models.PayoutAliases) error {
	for category, price := range pricing {
		if _, ok := models.LookupService(category); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownService, category)
		}
		if price.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: %s", ErrNegativePrice, category)
		}
	}
	for _, svc := range models.Services {
		if _, ok := pricing[svc.Category]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingPrice, svc.Category)
		}
	}
	for barber := range aliases {
		if _, ok := models.LookupBarber(barber); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownBarber, barber)
		}
	}
	return nil
}

// Save replaces both documents in one transaction. Concurrent saves resolve
// to whichever commits last.
func (s *Store) Save(ctx context.Context, pricing models.Pricing, aliases models.PayoutAliases) error {
	if err := Validate(pricing, aliases); err != nil {
		return err
	}
	pricing = pricing.Clone()
	aliases = aliases.Clone()
	for barber, alias := range aliases {
		if alias == "" {
			delete(aliases, barber)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := writeDocument(tx, models.PricingDocument, pricing); err != nil {
			return err
		}
		return writeDocument(tx, models.AliasDocument, aliases)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.pricing = pricing
	s.aliases = aliases
	s.mu.Unlock()

	s.log.Info("settings saved", zap.Int("aliases", len(aliases)))
	return nil
}

// Seed writes the current defaults for every document not stored yet.
func (s *Store) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		docs := map[string]any{
			models.PricingDocument: models.DefaultPricing(),
			models.AliasDocument:   models.PayoutAliases{},
		}
		for key, value := range docs {
			data, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encode %s: %w", key, err)
			}
			err = tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.SettingsDocument{Key: key, Data: datatypes.JSON(data)}).Error
			if err != nil {
				return fmt.Errorf("seed %s: %w", key, err)
			}
		}
		return nil
	})
}

func writeDocument(tx *gorm.DB, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	doc := models.SettingsDocument{Key: key, Data: datatypes.JSON(data)}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "document_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
