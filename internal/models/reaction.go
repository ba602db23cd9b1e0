package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionType is the closed set of reactions a post can receive.
type ReactionType string

const (
	ReactionSame    ReactionType = "same"
	ReactionHelpful ReactionType = "helpful"
	ReactionUpvote  ReactionType = "upvote"
)

// ReactionTypes returns all valid reaction types in a fixed order.
func ReactionTypes() []ReactionType {
	return []ReactionType{ReactionSame, ReactionHelpful, ReactionUpvote}
}

// Valid reports whether t is one of the known reaction types.
func (t ReactionType) Valid() bool {
	switch t {
	case ReactionSame, ReactionHelpful, ReactionUpvote:
		return true
	}
	return false
}

// NewReactionCounts returns the all-zero counter map every post starts with.
// The keys are always exactly the three reaction types.
func NewReactionCounts() map[ReactionType]int {
	counts := make(map[ReactionType]int, 3)
	for _, t := range ReactionTypes() {
		counts[t] = 0
	}
	return counts
}

// Reaction represents an anonymous reaction to a post. PostID is a weak
// reference: the store does not enforce that the post exists.
type Reaction struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID       primitive.ObjectID `json:"post_id" bson:"post_id"`
	ReactionType ReactionType       `json:"reaction_type" bson:"reaction_type"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// CreateReactionRequest defines the request body for reacting to a post.
type CreateReactionRequest struct {
	ReactionType string `json:"reaction_type" validate:"required"`
}
