package queue

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const changesChannel = "tulook:queue:changed"

// RedisNotifier fans queue changes out to other instances over redis pub/sub.
// Each instance ignores its own announcements.
type RedisNotifier struct {
	client *redis.Client
	origin string
	log    *zap.Logger
}

func NewRedisNotifier(client *redis.Client, log *zap.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, origin: uuid.NewString(), log: log}
}

func (n *RedisNotifier) Announce(ctx context.Context) error {
	return n.client.Publish(ctx, changesChannel, n.origin).Err()
}

// Listen calls refresh for every announcement from another instance until
// ctx is cancelled.
func (n *RedisNotifier) Listen(ctx context.Context, refresh func(context.Context) error) {
	pubsub := n.client.Subscribe(ctx, changesChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload == n.origin {
				continue
			}
			if err := refresh(ctx); err != nil {
				n.log.Warn("refresh after remote change", zap.Error(err))
			}
		}
	}
}
