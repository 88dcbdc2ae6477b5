package seed

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// versionKey holds the persisted seed-data version.
const versionKey = "teahouse:catalog:data_version"

// VersionStore is the durable key-value pair gating re-seeding.
type VersionStore interface {
	// Version returns the stored seed-data version, 0 when none was written.
	Version(ctx context.Context) (int, error)
	SetVersion(ctx context.Context, version int) error
}

// RedisVersionStore keeps the seed-data version in Redis
type RedisVersionStore struct {
	client *redis.Client
}

// NewRedisVersionStore creates a Redis-backed version store
func NewRedisVersionStore(client *redis.Client) *RedisVersionStore {
	return &RedisVersionStore{client: client}
}

func (s *RedisVersionStore) Version(ctx context.Context) (int, error) {
	value, err := s.client.Get(ctx, versionKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	version, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (s *RedisVersionStore) SetVersion(ctx context.Context, version int) error {
	return s.client.Set(ctx, versionKey, strconv.Itoa(version), 0).Err()
}
