package store

import (
	"context"
	"testing"
	"time"

	"jeju-tour-api/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConversationStore(t *testing.T, ttl time.Duration) (*RedisConversationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisConversationStore(rdb, ttl), mr
}

func TestRedisConversationStore_SaveAndLoad(t *testing.T) {
	s, mr := newTestConversationStore(t, time.Hour)
	ctx := context.Background()

	turns := []entity.Turn{
		{Role: entity.RoleUser, Text: "우도 투어를 찾아줘"},
		{Role: entity.RoleModel, Text: `{"filters":[],"items":[]}`},
	}
	require.NoError(t, s.Save(ctx, "abc", turns))
	assert.True(t, mr.Exists("conversation:abc"))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, turns, got)
}

func TestRedisConversationStore_NotFound(t *testing.T) {
	s, _ := newTestConversationStore(t, time.Hour)

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestRedisConversationStore_Expires(t *testing.T) {
	s, mr := newTestConversationStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "abc", []entity.Turn{{Role: entity.RoleUser, Text: "q"}}))
	assert.Equal(t, time.Minute, mr.TTL("conversation:abc"))

	mr.FastForward(2 * time.Minute)

	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestRedisConversationStore_CorruptValue(t *testing.T) {
	s, mr := newTestConversationStore(t, time.Hour)
	require.NoError(t, mr.Set("conversation:bad", "not json"))

	_, err := s.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestRedisConversationStore_Unavailable(t *testing.T) {
	s, mr := newTestConversationStore(t, time.Hour)
	mr.Close()

	_, err := s.Load(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrConversationNotFound)
}
