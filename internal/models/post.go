package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents an anonymous post stored in MongoDB. Posts are created
// once and never updated or deleted through the public API; reaction counts
// are the only fields mutated after insert.
type Post struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Content        string               `json:"content" bson:"content"`
	Tags           []string             `json:"tags" bson:"tags"`
	IsPrivate      bool                 `json:"is_private" bson:"is_private"`
	IsFlagged      bool                 `json:"is_flagged" bson:"is_flagged"`
	ReactionCounts map[ReactionType]int `json:"reaction_counts" bson:"reaction_counts"`
	CreatedAt      time.Time            `json:"created_at" bson:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post.
// Limits that come from configuration are enforced in the service layer;
// the struct tags cover shape-level constraints only.
type CreatePostRequest struct {
	Content   string   `json:"content" validate:"required"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
	IsPrivate bool     `json:"is_private,omitempty"`
}
