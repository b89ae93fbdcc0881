package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Luxera/luxera-api/logger"
	"github.com/redis/go-redis/v9"
)

// Storage is the persistence port for cart snapshots. Load returns an
// empty item list for unknown keys; implementations must tolerate
// corrupt stored data and treat it as an empty cart.
type Storage interface {
	Load(ctx context.Context, key string) ([]Item, error)
	Save(ctx context.Context, key string, items []Item) error
}

const redisKeyPrefix = "luxera:cart:"

// RedisStorage persists carts in Redis with no expiry: a cart lives
// until it is cleared by a successful order handoff.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]Item, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(key, data), nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err()
}

// decodeItems unmarshals a stored snapshot. Corrupt data is logged and
// treated as an empty cart rather than surfaced as an error.
func decodeItems(key string, data []byte) []Item {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn().Err(err).Str("session", key).Msg("Discarding corrupt cart snapshot")
		return nil
	}
	return items
}

// MemoryStorage is an in-process Storage used by tests and local runs
// without Redis.
type MemoryStorage struct {
	mu    sync.Mutex
	carts map[string][]Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]Item)}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.carts[key]))
	copy(items, s.carts[key])
	return items, nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]Item, len(items))
	copy(stored, items)
	s.carts[key] = stored
	return nil
}
