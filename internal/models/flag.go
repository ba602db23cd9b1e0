package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlagStatus is the closed moderation workflow state of a flag.
type FlagStatus string

const (
	FlagPending  FlagStatus = "pending"
	FlagReviewed FlagStatus = "reviewed"
	FlagResolved FlagStatus = "resolved"
)

// Valid reports whether s is a known flag status.
func (s FlagStatus) Valid() bool {
	switch s {
	case FlagPending, FlagReviewed, FlagResolved:
		return true
	}
	return false
}

// Flag is a moderation record referencing a post. The transition logic
// lives in the moderation workflow; only the schema is declared here.
type Flag struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID    primitive.ObjectID `json:"post_id" bson:"post_id"`
	Status    FlagStatus         `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
