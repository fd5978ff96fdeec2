package repository

import (
	"context"
	"errors"

	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// RedisKeyValueStore keeps each record list in a Redis string under
// prefix+key. Multi-key writes run inside MULTI/EXEC.
type RedisKeyValueStore struct {
	client redis.Cmdable
	prefix string
}

var _ interfaces.IKeyValueStore = (*RedisKeyValueStore)(nil)

func NewRedisKeyValueStore(client redis.Cmdable, prefix string) *RedisKeyValueStore {
	return &RedisKeyValueStore{client: client, prefix: prefix}
}

func (r *RedisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisKeyValueStore) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKeyValueStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for k, v := range values {
			p.Set(ctx, r.prefix+k, v, 0)
		}
		return nil
	})
	return err
}
