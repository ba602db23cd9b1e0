package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/store"
)

// ReactionRepository defines the interface for reaction data operations.
type ReactionRepository interface {
	Create(ctx context.Context, reaction *models.Reaction) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reaction, error)
	CountForPost(ctx context.Context, postID primitive.ObjectID) (map[models.ReactionType]int64, error)
}

// MongoReactionRepository implements ReactionRepository for MongoDB.
type MongoReactionRepository struct {
	collection *mongo.Collection
}

// NewMongoReactionRepository creates a new MongoReactionRepository.
func NewMongoReactionRepository(db *mongo.Database) *MongoReactionRepository {
	return &MongoReactionRepository{collection: db.Collection(store.CollectionReactions)}
}

// Create inserts a new reaction and records its assigned identifier.
func (r *MongoReactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	reaction.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, reaction); err != nil {
		return fmt.Errorf("failed to insert reaction: %w", err)
	}
	return nil
}

// GetByID retrieves a reaction by its identifier.
func (r *MongoReactionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to find reaction: %w", err)
	}
	return &reaction, nil
}

// CountForPost counts reactions per type for one post. Each count query
// hits the (post_id, reaction_type) compound index.
func (r *MongoReactionRepository) CountForPost(ctx context.Context, postID primitive.ObjectID) (map[models.ReactionType]int64, error) {
	counts := make(map[models.ReactionType]int64, 3)
	for _, t := range models.ReactionTypes() {
		n, err := r.collection.CountDocuments(ctx, bson.M{"post_id": postID, "reaction_type": t})
		if err != nil {
			return nil, fmt.Errorf("failed to count reactions: %w", err)
		}
		counts[t] = n
	}
	return counts, nil
}
