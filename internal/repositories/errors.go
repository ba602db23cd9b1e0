package repositories

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrReactionNotFound = errors.New("reaction not found")
)
