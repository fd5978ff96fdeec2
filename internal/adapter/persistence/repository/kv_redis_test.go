package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// fakeRedis serves GET/SET from a map. Commands queued in TxPipelined are
// applied only when the callback succeeds and execErr is nil.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	execErr error
	txs     int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) TxPipelined(_ context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	f.txs++
	pipe := &fakePipeliner{queued: map[string]string{}}
	if err := fn(pipe); err != nil {
		return nil, err
	}
	if f.execErr != nil {
		return nil, f.execErr
	}
	for k, v := range pipe.queued {
		f.data[k] = v
	}
	return nil, nil
}

type fakePipeliner struct {
	redis.Pipeliner
	queued map[string]string
}

func (p *fakePipeliner) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	p.queued[key] = value.(string)
	return redis.NewStatusResult("QUEUED", nil)
}

func TestRedisKeyValueStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		kv := NewRedisKeyValueStore(newFakeRedis(), "kv:")
		_, found, err := kv.Get(ctx, "visits")
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("set then get uses the prefix", func(t *testing.T) {
		rdb := newFakeRedis()
		kv := NewRedisKeyValueStore(rdb, "kv:")
		if err := kv.Set(ctx, "visits", `[]`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := rdb.data["kv:visits"]; !ok {
			t.Fatalf("expected prefixed key, got %v", rdb.data)
		}
		v, found, err := kv.Get(ctx, "visits")
		if err != nil || !found || v != `[]` {
			t.Fatalf("unexpected read: %q %v %v", v, found, err)
		}
	})

	t.Run("set many is one MULTI/EXEC", func(t *testing.T) {
		rdb := newFakeRedis()
		store := NewRecordStore(NewRedisKeyValueStore(rdb, "kv:"), nil)
		if err := store.SaveCollectionsAndOrders(ctx, nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rdb.txs != 1 || rdb.data["kv:collections"] != "[]" || rdb.data["kv:orders"] != "[]" {
			t.Fatalf("unexpected state: txs=%d data=%v", rdb.txs, rdb.data)
		}
	})

	t.Run("failed exec writes nothing", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.execErr = errors.New("EXECABORT")
		kv := NewRedisKeyValueStore(rdb, "")
		if err := kv.SetMany(ctx, map[string]string{"collections": "[]", "orders": "[]"}); err == nil {
			t.Fatalf("expected error")
		}
		if len(rdb.data) != 0 {
			t.Fatalf("expected no keys, got %v", rdb.data)
		}
	})
}
