package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the four entity collections.
const (
	CollectionPosts     = "posts"
	CollectionReactions = "reactions"
	CollectionFlags     = "flags"
	CollectionTags      = "tags"
)

// indexModels declares every index the application relies on, keyed by
// collection name.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionPosts: {
			// Chronological feed ordering.
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			// Tag filtering.
			{Keys: bson.D{{Key: "tags", Value: 1}}},
			// Moderation queries.
			{Keys: bson.D{{Key: "is_flagged", Value: 1}}},
			// Private post exclusion.
			{Keys: bson.D{{Key: "is_private", Value: 1}}},
		},
		CollectionReactions: {
			{Keys: bson.D{{Key: "post_id", Value: 1}}},
			{Keys: bson.D{{Key: "reaction_type", Value: 1}}},
			// Compound index for per-type count aggregation.
			{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "reaction_type", Value: 1}}},
		},
		CollectionFlags: {
			{Keys: bson.D{{Key: "post_id", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		CollectionTags: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "usage_count", Value: -1}}},
		},
	}
}

// indexCreator is the slice of mongo.IndexView the initializer needs.
type indexCreator interface {
	CreateOne(ctx context.Context, model mongo.IndexModel, opts ...*options.CreateIndexesOptions) (string, error)
}

// createCollectionIndexes declares one collection's indexes. A failure on
// one index does not stop the remaining indexes; every failure is returned.
func createCollectionIndexes(ctx context.Context, name string, indexes indexCreator) []error {
	var errs []error
	for _, model := range indexModels()[name] {
		if _, err := indexes.CreateOne(ctx, model); err != nil {
			errs = append(errs, fmt.Errorf("failed to create index %v for %s: %w", model.Keys, name, err))
		}
	}
	return errs
}

// EnsureIndexes declares all collections and indexes. It is idempotent:
// re-creating an index with an identical definition is a no-op on the server.
// Failures are joined into the returned error after every index has been
// attempted.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	db, err := s.Database()
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range []string{CollectionPosts, CollectionReactions, CollectionFlags, CollectionTags} {
		errs = append(errs, createCollectionIndexes(ctx, name, db.Collection(name).Indexes())...)
		log.Printf("Indexes ensured for collection: %s", name)
	}
	return errors.Join(errs...)
}
