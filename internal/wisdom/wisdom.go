package wisdom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tulook/internal/models"
	"tulook/internal/queue"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	FallbackOnError = "El maestro está perfeccionando otro corte. Tu turno llegará pronto."
	FallbackOnEmpty = "La calidad lleva tiempo. Relájate y disfruta del ambiente."
)

// Generator turns a prompt into text.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service produces the short encouragement shown next to a barber. It never
// fails: every error ends in a fixed fallback message.
type Service struct {
	gen   Generator
	cache *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

// NewService builds the service. gen and cache may be nil.
func NewService(gen Generator, cache *redis.Client, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{gen: gen, cache: cache, ttl: ttl, log: log}
}

// Wisdom returns a message for barber given its current wait state.
func (s *Service) Wisdom(ctx context.Context, barber models.Barber, a queue.Availability) string {
	if s.gen == nil {
		return FallbackOnEmpty
	}

	key := cacheKey(barber.Name, a)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil && cached != "" {
			return cached
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			s.log.Warn("wisdom cache read", zap.String("key", key), zap.Error(err))
		}
	}

	text, err := s.gen.GenerateContent(ctx, Prompt(barber, a))
	if err != nil {
		s.log.Error("wisdom generation failed", zap.String("barber", barber.Name), zap.Error(err))
		return FallbackOnError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackOnEmpty
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, key, text, s.ttl).Err(); err != nil {
			s.log.Warn("wisdom cache write", zap.String("key", key), zap.Error(err))
		}
	}
	return text
}

func cacheKey(barber string, a queue.Availability) string {
	return fmt.Sprintf("wisdom:%s:%d:%d", barber, a.Waiting, a.WaitMinutes)
}

// Prompt is the instruction sent to the model.
func Prompt(barber models.Barber, a queue.Availability) string {
	return fmt.Sprintf(`Eres un anfitrión carismático de una barbería de alta gama.
El cliente está interesado en %s, que se especializa en %s.
Actualmente hay %d personas antes que ellos, con una espera de %d minutos.
Da un consejo o comentario alentador, muy corto y con estilo premium, sobre por qué vale la pena esperar por %s.
Responde exclusivamente en español. Máximo 2 frases.`,
		barber.Name, barber.Specialty, a.Waiting, a.WaitMinutes, barber.Name)
}
