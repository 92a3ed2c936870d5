package kvstore

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	redisconn "github.com/dmitrymomot/mailblocks/pkg/redis"
)

// RedisStore keeps each value as a plain string key, no expiry.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	owned  bool
	closed atomic.Bool
}

// NewRedisStore wraps an existing client. prefix is prepended to every key.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if client == nil {
		panic("kvstore: redis client is nil")
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Ping checks the connection to the server.
func (s *RedisStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return redisconn.Healthcheck(s.client)(ctx)
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.owned {
		return s.client.Close()
	}
	return nil
}
