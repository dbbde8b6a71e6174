package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jeju-tour-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const conversationKeyPrefix = "conversation:"

// RedisConversationStore keeps the turns of provider conversations for
// providers that cannot reference an earlier answer by id themselves.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisConversationStore) Load(ctx context.Context, id string) ([]entity.Turn, error) {
	val, err := r.client.Get(ctx, conversationKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, entity.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", id, err)
	}

	var turns []entity.Turn
	if err := json.Unmarshal([]byte(val), &turns); err != nil {
		return nil, fmt.Errorf("decode conversation %s: %w", id, err)
	}
	return turns, nil
}

// Save overwrites the conversation and resets its expiry. A zero ttl keeps the
// key until Redis evicts it.
func (r *RedisConversationStore) Save(ctx context.Context, id string, turns []entity.Turn) error {
	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("encode conversation %s: %w", id, err)
	}
	return r.client.Set(ctx, conversationKeyPrefix+id, data, r.ttl).Err()
}
