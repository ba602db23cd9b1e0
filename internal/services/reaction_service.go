package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/repositories"
	"github.com/unlinked/backend/internal/validation"
)

// ReactionService implements anonymous reactions. The post reference is
// weak: creation does not verify the post exists.
type ReactionService struct {
	reactions repositories.ReactionRepository
	posts     repositories.PostRepository
}

// NewReactionService creates a new ReactionService.
func NewReactionService(reactions repositories.ReactionRepository, posts repositories.PostRepository) *ReactionService {
	return &ReactionService{reactions: reactions, posts: posts}
}

// CreateReaction validates and inserts a reaction, then bumps the owning
// post's counter with an atomic $inc. The counter update is best effort: a
// failure is logged but does not fail the reaction, so counts may lag the
// reactions collection until the next successful update.
func (s *ReactionService) CreateReaction(ctx context.Context, postID, reactionType string) (*models.Reaction, error) {
	objID, err := validation.ObjectIDHex(postID)
	if err != nil {
		return nil, err
	}
	rt, err := validation.ReactionType(reactionType)
	if err != nil {
		return nil, err
	}

	reaction := &models.Reaction{
		PostID:       objID,
		ReactionType: rt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.reactions.Create(ctx, reaction); err != nil {
		log.Printf("Error creating reaction: %v", err)
		return nil, fmt.Errorf("failed to create reaction: %w", err)
	}

	if err := s.posts.IncrementReactionCount(ctx, objID, rt); err != nil {
		log.Printf("Error updating reaction count for post %s: %v", postID, err)
	}
	return reaction, nil
}

// CountReactions returns per-type reaction counts for one post.
func (s *ReactionService) CountReactions(ctx context.Context, postID string) (map[models.ReactionType]int64, error) {
	objID, err := validation.ObjectIDHex(postID)
	if err != nil {
		return nil, err
	}

	counts, err := s.reactions.CountForPost(ctx, objID)
	if err != nil {
		log.Printf("Error counting reactions for post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	return counts, nil
}
