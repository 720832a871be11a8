package wisdom

import (
	"context"
	"errors"
	"testing"
	"time"

	"tulook/internal/models"
	"tulook/internal/queue"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	text   string
	err    error
	calls  int
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.text, f.err
}

func gonzalo(t *testing.T) models.Barber {
	t.Helper()
	b, ok := models.LookupBarber("Gonzalo")
	require.True(t, ok)
	return b
}

func TestWisdomFallbacks(t *testing.T) {
	ctx := context.Background()
	a := queue.Availability{Barber: "Gonzalo", Waiting: 2, WaitMinutes: 45}

	failing := NewService(&fakeGenerator{err: errors.New("quota")}, nil, 0, zap.NewNop())
	assert.Equal(t, FallbackOnError, failing.Wisdom(ctx, gonzalo(t), a))

	empty := NewService(&fakeGenerator{text: "  "}, nil, 0, zap.NewNop())
	assert.Equal(t, FallbackOnEmpty, empty.Wisdom(ctx, gonzalo(t), a))

	disabled := NewService(nil, nil, 0, zap.NewNop())
	assert.Equal(t, FallbackOnEmpty, disabled.Wisdom(ctx, gonzalo(t), a))
}

func TestWisdomPromptCarriesWaitState(t *testing.T) {
	gen := &fakeGenerator{text: "Vale cada minuto."}
	s := NewService(gen, nil, 0, zap.NewNop())

	got := s.Wisdom(context.Background(), gonzalo(t), queue.Availability{Barber: "Gonzalo", Waiting: 2, WaitMinutes: 45})
	assert.Equal(t, "Vale cada minuto.", got)
	assert.Contains(t, gen.prompt, "Gonzalo")
	assert.Contains(t, gen.prompt, "Degradados Clásicos y Perfiles")
	assert.Contains(t, gen.prompt, "hay 2 personas")
	assert.Contains(t, gen.prompt, "45 minutos")
}

func TestWisdomIsCached(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	gen := &fakeGenerator{text: "Vale cada minuto."}
	s := NewService(gen, client, 10*time.Minute, zap.NewNop())
	a := queue.Availability{Barber: "Gonzalo", Waiting: 1, WaitMinutes: 30}

	mock.ExpectGet("wisdom:Gonzalo:1:30").RedisNil()
	mock.ExpectSet("wisdom:Gonzalo:1:30", "Vale cada minuto.", 10*time.Minute).SetVal("OK")
	assert.Equal(t, "Vale cada minuto.", s.Wisdom(ctx, gonzalo(t), a))

	mock.ExpectGet("wisdom:Gonzalo:1:30").SetVal("Desde la caché.")
	assert.Equal(t, "Desde la caché.", s.Wisdom(ctx, gonzalo(t), a))

	assert.Equal(t, 1, gen.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWisdomCacheFailureStillGenerates(t *testing.T) {
	client, mock := redismock.NewClientMock()
	gen := &fakeGenerator{text: "Paciencia premium."}
	s := NewService(gen, client, time.Minute, zap.NewNop())
	a := queue.Availability{Barber: "Gonzalo"}

	mock.ExpectGet("wisdom:Gonzalo:0:0").SetErr(errors.New("connection refused"))
	mock.ExpectSet("wisdom:Gonzalo:0:0", "Paciencia premium.", time.Minute).SetErr(errors.New("connection refused"))

	assert.Equal(t, "Paciencia premium.", s.Wisdom(context.Background(), gonzalo(t), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}
