// internal/app/store/mongostore/mongostore.go
package mongostore

import (
	"context"
	"errors"
	"fmt"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// seqField orders documents by insertion so GetAll returns source order.
const seqField = "seq"

// Store is a Mongo-backed repository. T must map its key to the document
// _id through a bson tag.
type Store[K comparable, T any] struct {
	c        *mongo.Collection
	counters *mongo.Collection
	key      repository.KeyFunc[K, T]
}

var _ repository.Repository[int, struct{}] = (*Store[int, struct{}])(nil)

// New returns a store over db.<collection>.
func New[K comparable, T any](db *mongo.Database, collection string, key repository.KeyFunc[K, T]) *Store[K, T] {
	return &Store[K, T]{
		c:        db.Collection(collection),
		counters: db.Collection("counters"),
		key:      key,
	}
}

// Collection exposes the underlying collection for index setup.
func (s *Store[K, T]) Collection() *mongo.Collection { return s.c }

// EnsureIndexes creates the ordering index.
func (s *Store[K, T]) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: seqField, Value: 1}},
	})
	return err
}

func (s *Store[K, T]) nextSeq(ctx context.Context) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": s.c.Name()},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next seq for %s: %w", s.c.Name(), err)
	}
	return doc.Value, nil
}

func toDoc(item any) (bson.M, error) {
	raw, err := bson.Marshal(item)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store[K, T]) GetAll(ctx context.Context) ([]T, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: seqField, Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[K, T]) GetByID(ctx context.Context, id K) (T, error) {
	var item T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item, repository.ErrNotFound
	}
	return item, err
}

func (s *Store[K, T]) Insert(ctx context.Context, item T) error {
	doc, err := toDoc(item)
	if err != nil {
		return err
	}
	seq, err := s.nextSeq(ctx)
	if err != nil {
		return err
	}
	doc[seqField] = seq
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		if wafflemongo.IsDup(err) {
			return repository.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (s *Store[K, T]) Update(ctx context.Context, item T) (int64, error) {
	set, err := toDoc(item)
	if err != nil {
		return 0, err
	}
	delete(set, "_id")
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": s.key(item)}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// UpdateFunc rewrites the document with id from its current value. _id is
// unique here, so at most one document is touched.
func (s *Store[K, T]) UpdateFunc(ctx context.Context, id K, fn func(T) T) (int64, error) {
	cur, err := s.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	next := fn(cur)
	if s.key(next) != id {
		return 0, fmt.Errorf("update %s: key changed", s.c.Name())
	}
	return s.Update(ctx, next)
}

func (s *Store[K, T]) Delete(ctx context.Context, id K) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store[K, T]) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// SeedIfEmpty inserts items when the collection has no documents. It
// reports whether seeding happened.
func (s *Store[K, T]) SeedIfEmpty(ctx context.Context, items []T) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	for _, it := range items {
		if err := s.Insert(ctx, it); err != nil {
			return false, err
		}
	}
	return true, nil
}
