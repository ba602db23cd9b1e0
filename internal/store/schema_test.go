package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeIndexCreator fails index creation for the configured key names and
// records every attempted index.
type fakeIndexCreator struct {
	failKeys  map[string]bool
	attempted []string
}

func (f *fakeIndexCreator) CreateOne(ctx context.Context, model mongo.IndexModel, opts ...*options.CreateIndexesOptions) (string, error) {
	key := model.Keys.(bson.D)[0].Key
	f.attempted = append(f.attempted, key)
	if f.failKeys[key] {
		return "", errors.New("index definition conflict")
	}
	return key + "_1", nil
}

func TestIndexModelsCoverAllCollections(t *testing.T) {
	models := indexModels()

	wantCounts := map[string]int{
		CollectionPosts:     4,
		CollectionReactions: 3,
		CollectionFlags:     3,
		CollectionTags:      2,
	}
	if len(models) != len(wantCounts) {
		t.Fatalf("collections = %d, want %d", len(models), len(wantCounts))
	}
	for name, want := range wantCounts {
		if got := len(models[name]); got != want {
			t.Errorf("%s indexes = %d, want %d", name, got, want)
		}
	}
}

func TestCreateCollectionIndexesContinuesPastFailure(t *testing.T) {
	creator := &fakeIndexCreator{failKeys: map[string]bool{"created_at": true}}

	errs := createCollectionIndexes(context.Background(), CollectionPosts, creator)

	if len(creator.attempted) != len(indexModels()[CollectionPosts]) {
		t.Errorf("attempted %d indexes, want %d despite a failure",
			len(creator.attempted), len(indexModels()[CollectionPosts]))
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one failure", errs)
	}
	joined := errors.Join(errs...)
	if !strings.Contains(joined.Error(), CollectionPosts) {
		t.Errorf("joined error %q does not name the collection", joined)
	}
}

func TestCreateCollectionIndexesNoFailures(t *testing.T) {
	creator := &fakeIndexCreator{}

	if errs := createCollectionIndexes(context.Background(), CollectionTags, creator); len(errs) != 0 {
		t.Errorf("errs = %v, want none", errs)
	}
	if len(creator.attempted) != len(indexModels()[CollectionTags]) {
		t.Errorf("attempted %d indexes, want %d", len(creator.attempted), len(indexModels()[CollectionTags]))
	}
}

func TestReactionCompoundIndex(t *testing.T) {
	models := indexModels()

	var found bool
	for _, m := range models[CollectionReactions] {
		keys := m.Keys.(bson.D)
		if len(keys) == 2 && keys[0].Key == "post_id" && keys[1].Key == "reaction_type" {
			found = true
		}
	}
	if !found {
		t.Error("missing (post_id, reaction_type) compound index on reactions")
	}
}

func TestTagNameIndexUnique(t *testing.T) {
	models := indexModels()

	var found bool
	for _, m := range models[CollectionTags] {
		keys := m.Keys.(bson.D)
		if len(keys) == 1 && keys[0].Key == "name" {
			if m.Options == nil || m.Options.Unique == nil || !*m.Options.Unique {
				t.Error("tags name index is not unique")
			}
			found = true
		}
	}
	if !found {
		t.Error("missing name index on tags")
	}
}

func TestFeedIndexDescending(t *testing.T) {
	models := indexModels()

	var found bool
	for _, m := range models[CollectionPosts] {
		keys := m.Keys.(bson.D)
		if len(keys) == 1 && keys[0].Key == "created_at" {
			if keys[0].Value != -1 {
				t.Errorf("created_at index direction = %v, want -1", keys[0].Value)
			}
			found = true
		}
	}
	if !found {
		t.Error("missing created_at index on posts")
	}
}
