package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tag is an analytics record for a tag name. Names are unique and lowercase.
// No service writes usage counts yet; the collection exists for the schema
// initializer and future analytics.
type Tag struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	UsageCount int                `json:"usage_count" bson:"usage_count"`
}
