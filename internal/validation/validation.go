// Package validation holds the pure input-validation rules applied before
// any store operation. Every failure is an *Error, which handlers map to
// HTTP 400.
package validation

import (
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unlinked/backend/internal/models"
)

// MaxTagLength bounds a single normalized tag.
const MaxTagLength = 50

// Error is a caller-input validation failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message string) *Error {
	return &Error{Message: message}
}

// ContentLength checks that content is non-empty and within max characters.
// Limits count characters, not bytes, so multibyte content is measured the
// same way the struct validators measure it.
func ContentLength(content string, max int) error {
	if content == "" {
		return newError("content must not be empty")
	}
	if utf8.RuneCountInString(content) > max {
		return newError("content too long")
	}
	return nil
}

// TagCount checks that no more than max tags are supplied.
func TagCount(tags []string, max int) error {
	if len(tags) > max {
		return newError("too many tags")
	}
	return nil
}

// NormalizeTagFilter trims whitespace and lowercases a tag, rejecting
// results longer than MaxTagLength.
func NormalizeTagFilter(tag string) (string, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if utf8.RuneCountInString(tag) > MaxTagLength {
		return "", newError("tag too long")
	}
	return tag, nil
}

// ObjectIDHex parses a store identifier, rejecting anything that is not a
// 24-character hex ObjectID.
func ObjectIDHex(id string) (primitive.ObjectID, error) {
	if len(id) != 24 {
		return primitive.NilObjectID, newError("invalid id format")
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, newError("invalid id format")
	}
	return objID, nil
}

// ReactionType checks membership in the closed reaction-type set.
func ReactionType(value string) (models.ReactionType, error) {
	t := models.ReactionType(value)
	if !t.Valid() {
		return "", newError("invalid reaction type")
	}
	return t, nil
}
