package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/repositories"
	"github.com/unlinked/backend/internal/validation"
	"github.com/unlinked/backend/pkg/config"
)

// Limits carries the configurable validation and pagination bounds.
type Limits struct {
	MaxContentLength int
	MaxTagsPerPost   int
	DefaultPageSize  int
	MaxPageSize      int
}

// LimitsFromConfig extracts the service limits from application config.
func LimitsFromConfig(cfg *config.Config) Limits {
	return Limits{
		MaxContentLength: cfg.MaxContentLength,
		MaxTagsPerPost:   cfg.MaxTagsPerPost,
		DefaultPageSize:  cfg.DefaultPageSize,
		MaxPageSize:      cfg.MaxPageSize,
	}
}

// PostService implements post creation and the public feed. All input
// validation happens here, before any store call.
type PostService struct {
	repo   repositories.PostRepository
	limits Limits
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository, limits Limits) *PostService {
	return &PostService{repo: repo, limits: limits}
}

// CreatePostInput carries the caller-supplied fields of a new post.
type CreatePostInput struct {
	Content   string
	Tags      []string
	IsPrivate bool
}

// CreatePost validates the input, builds the post with server-side defaults
// and inserts it. The returned post carries its assigned identifier.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ContentLength(in.Content, s.limits.MaxContentLength); err != nil {
		return nil, err
	}
	if err := validation.TagCount(in.Tags, s.limits.MaxTagsPerPost); err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		normalized, err := validation.NormalizeTagFilter(t)
		if err != nil {
			return nil, err
		}
		if normalized != "" {
			tags = append(tags, normalized)
		}
	}

	post := &models.Post{
		Content:        in.Content,
		Tags:           tags,
		IsPrivate:      in.IsPrivate,
		IsFlagged:      false,
		ReactionCounts: models.NewReactionCounts(),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		log.Printf("Error creating post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// ListPosts returns one page of the public feed, newest first. A zero limit
// selects the default page size; out-of-range parameters are rejected.
func (s *PostService) ListPosts(ctx context.Context, skip, limit int64, tagFilter string) ([]models.Post, error) {
	if skip < 0 {
		return nil, &validation.Error{Message: "skip must not be negative"}
	}
	if limit == 0 {
		limit = int64(s.limits.DefaultPageSize)
	}
	if limit < 1 || limit > int64(s.limits.MaxPageSize) {
		return nil, &validation.Error{Message: "limit out of range"}
	}

	q := repositories.ListPostsQuery{Skip: skip, Limit: limit}
	if tagFilter != "" {
		tag, err := validation.NormalizeTagFilter(tagFilter)
		if err != nil {
			return nil, err
		}
		q.Tag = tag
	}

	posts, err := s.repo.List(ctx, q)
	if err != nil {
		log.Printf("Error retrieving posts: %v", err)
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	return posts, nil
}

// GetPost retrieves one post by its hex identifier.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	objID, err := validation.ObjectIDHex(id)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, objID)
	if err != nil {
		if !errors.Is(err, repositories.ErrPostNotFound) {
			log.Printf("Error retrieving post %s: %v", id, err)
		}
		return nil, err
	}
	return post, nil
}
