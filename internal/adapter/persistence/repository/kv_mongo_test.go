package repository

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeMongoCollection keeps documents by _id and applies $set upserts.
type fakeMongoCollection struct {
	docs      map[string]kvDocument
	updateErr error
	upserts   int
}

func newFakeMongoCollection() *fakeMongoCollection {
	return &fakeMongoCollection{docs: map[string]kvDocument{}}
}

func (f *fakeMongoCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	key, _ := filter.(bson.M)["_id"].(string)
	doc, ok := f.docs[key]
	if !ok {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

func (f *fakeMongoCollection) UpdateOne(_ context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if len(opts) == 0 || opts[0].Upsert == nil || !*opts[0].Upsert {
		return nil, errors.New("expected an upsert")
	}
	key, _ := filter.(bson.M)["_id"].(string)
	set := update.(bson.M)["$set"].(bson.M)
	f.docs[key] = kvDocument{Key: key, Value: set["value"].(string), UpdatedAt: set["updated_at"].(string)}
	f.upserts++
	return &mongo.UpdateResult{UpsertedCount: 1}, nil
}

// stagedTx applies the writes of fn only when fn succeeds, like a committed
// transaction.
func stagedTx(coll *fakeMongoCollection, runs *int) txRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		*runs++
		before := make(map[string]kvDocument, len(coll.docs))
		for k, v := range coll.docs {
			before[k] = v
		}
		if err := fn(ctx); err != nil {
			coll.docs = before
			return err
		}
		return nil
	}
}

func TestMongoKeyValueStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		kv := &MongoKeyValueStore{coll: newFakeMongoCollection()}
		_, found, err := kv.Get(ctx, "visits")
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		kv := &MongoKeyValueStore{coll: newFakeMongoCollection()}
		if err := kv.Set(ctx, "visits", `[{"id":"1"}]`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, found, err := kv.Get(ctx, "visits")
		if err != nil || !found || v != `[{"id":"1"}]` {
			t.Fatalf("unexpected read: %q %v %v", v, found, err)
		}
	})

	t.Run("set many runs in one transaction", func(t *testing.T) {
		coll := newFakeMongoCollection()
		runs := 0
		store := NewRecordStore(&MongoKeyValueStore{coll: coll, withTx: stagedTx(coll, &runs)}, nil)

		if err := store.SaveCollectionsAndOrders(ctx, nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if runs != 1 || coll.upserts != 2 {
			t.Fatalf("expected one transaction with two upserts, got %d/%d", runs, coll.upserts)
		}
	})

	t.Run("failed write rolls back", func(t *testing.T) {
		coll := newFakeMongoCollection()
		coll.updateErr = errors.New("WriteConflict")
		runs := 0
		kv := &MongoKeyValueStore{coll: coll, withTx: stagedTx(coll, &runs)}

		if err := kv.SetMany(ctx, map[string]string{"collections": "[]", "orders": "[]"}); err == nil {
			t.Fatalf("expected error")
		}
		if len(coll.docs) != 0 {
			t.Fatalf("expected no documents, got %d", len(coll.docs))
		}
	})
}
