package repository

import (
	"context"
	"errors"
	"fmt"

	"pharma_fieldops/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultKVCollection = "kv"

type kvDocument struct {
	Key       string `bson:"_id"`
	Value     string `bson:"value"`
	UpdatedAt string `bson:"updated_at"`
}

// mongoKVCollection is the subset of *mongo.Collection used by the store.
type mongoKVCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// txRunner runs fn inside a transaction and commits when it returns nil.
type txRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// MongoKeyValueStore keeps one document per key, with the key as _id.
// SetMany runs in a session transaction, which requires a replica set.
type MongoKeyValueStore struct {
	coll   mongoKVCollection
	withTx txRunner
}

var _ interfaces.IKeyValueStore = (*MongoKeyValueStore)(nil)

func NewMongoKeyValueStore(db *mongo.Database, collection string) *MongoKeyValueStore {
	if collection == "" {
		collection = defaultKVCollection
	}
	return &MongoKeyValueStore{coll: db.Collection(collection), withTx: sessionTx(db.Client())}
}

func sessionTx(client *mongo.Client) txRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		sess, err := client.StartSession()
		if err != nil {
			return fmt.Errorf("could not start mongo session: %w", err)
		}
		defer sess.EndSession(ctx)

		_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return nil, fn(sc)
		})
		return err
	}
}

func (r *MongoKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

func (r *MongoKeyValueStore) Set(ctx context.Context, key, value string) error {
	return r.upsert(ctx, key, value, nowRFC3339())
}

func (r *MongoKeyValueStore) upsert(ctx context.Context, key, value, now string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": now}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoKeyValueStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	now := nowRFC3339()
	return r.withTx(ctx, func(tx context.Context) error {
		for k, v := range values {
			if err := r.upsert(tx, k, v, now); err != nil {
				return fmt.Errorf("write %s failed: %w", k, err)
			}
		}
		return nil
	})
}
