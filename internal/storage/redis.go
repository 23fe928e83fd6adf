package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:"

// RedisStore keeps client records in redis, for deployments where the client
// runs server-side (kiosks sharing one session backend).
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cannot read record %s: %w", key, err)
	}
	return data, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("cannot write record %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("cannot delete record %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
