// internal/app/store/mongo/mongostore.go
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountersCollection holds one {_id: <entity name>, seq: <last id>} document
// per entity. Ids are taken with an atomic $inc, so a deleted id is never
// issued again.
const CountersCollection = "counters"

// Store keeps one entity type in one collection, keyed by int64 _id.
type Store[T any] struct {
	c        *mongo.Collection
	counters *mongo.Collection
	entity   repo.Entity[T]
}

func New[T any](db *mongo.Database, entity repo.Entity[T]) *Store[T] {
	return &Store[T]{
		c:        db.Collection(entity.Name),
		counters: db.Collection(CountersCollection),
		entity:   entity,
	}
}

func (s *Store[T]) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": s.entity.Name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("mongo: next id for %s: %w", s.entity.Name, err)
	}
	return counter.Seq, nil
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	s.entity.Sort(out)
	return out, nil
}

func (s *Store[T]) Get(ctx context.Context, id int64) (T, error) {
	var rec T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, repo.ErrNotFound
	}
	return rec, err
}

func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	s.entity.ApplyDefaults(&rec)
	id, err := s.nextID(ctx)
	if err != nil {
		return rec, err
	}
	s.entity.SetID(&rec, id)
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return rec, err
	}
	return asStored(rec)
}

// Update reads, merges in memory, and replaces the document. Concurrent
// writers to the same id are last-write-wins.
func (s *Store[T]) Update(ctx context.Context, id int64, patch repo.Patch) (T, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	merged, err := repo.Merge(cur, patch)
	if err != nil {
		return cur, err
	}
	s.entity.SetID(&merged, id)

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, merged)
	if err != nil {
		return cur, err
	}
	if res.MatchedCount == 0 {
		return cur, repo.ErrNotFound
	}
	return asStored(merged)
}

func (s *Store[T]) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// asStored returns rec as a later Get would decode it. BSON datetimes hold
// milliseconds in UTC, so finer or zoned times come back changed.
func asStored[T any](rec T) (T, error) {
	b, err := bson.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("mongo: encode record: %w", err)
	}
	var out T
	if err := bson.Unmarshal(b, &out); err != nil {
		return rec, fmt.Errorf("mongo: decode record: %w", err)
	}
	return out, nil
}
