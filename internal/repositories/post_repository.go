package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/store"
)

// ListPostsQuery describes a public-feed page. Tag must already be
// normalized; an empty Tag means no tag filter.
type ListPostsQuery struct {
	Skip  int64
	Limit int64
	Tag   string
}

// PostRepository defines the interface for post data operations. Identifiers
// are validated before they reach this layer, so methods take ObjectIDs.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, q ListPostsQuery) ([]models.Post, error)
	IncrementReactionCount(ctx context.Context, postID primitive.ObjectID, reactionType models.ReactionType) error
}

// MongoPostRepository implements PostRepository for MongoDB.
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository.
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(store.CollectionPosts)}
}

// Create inserts a new post and records its assigned identifier.
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its identifier.
func (r *MongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

// List retrieves a page of public posts, newest first. Private posts are
// always excluded.
func (r *MongoPostRepository) List(ctx context.Context, q ListPostsQuery) ([]models.Post, error) {
	filter := bson.M{"is_private": false}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}

	findOptions := options.Find().
		SetSkip(q.Skip).
		SetLimit(q.Limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// IncrementReactionCount atomically bumps one reaction counter on a post.
func (r *MongoPostRepository) IncrementReactionCount(ctx context.Context, postID primitive.ObjectID, reactionType models.ReactionType) error {
	field := fmt.Sprintf("reaction_counts.%s", reactionType)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("failed to increment reaction count: %w", err)
	}
	return nil
}
