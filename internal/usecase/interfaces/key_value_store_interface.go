package interfaces

import "context"

// IKeyValueStore is the raw string store behind the record store.
//
// Every record list lives under one key as a JSON array. SetMany writes all
// pairs in one atomic batch: either every key is updated or none is.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
}
