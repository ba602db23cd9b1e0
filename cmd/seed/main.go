// Command seed loads sample posts and reactions for development and manual
// testing. Not intended for production databases.
package main

import (
	"context"
	"log"
	"time"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/repositories"
	"github.com/unlinked/backend/internal/store"
	"github.com/unlinked/backend/pkg/config"
)

func samplePosts(now time.Time) []models.Post {
	return []models.Post{
		{
			Content:        "Just had my third interview this week and I'm exhausted. Why do companies make you jump through so many hoops just to get a job?",
			Tags:           []string{"interviews", "burnout", "jobsearch"},
			CreatedAt:      now.Add(-2 * time.Hour),
			ReactionCounts: map[models.ReactionType]int{models.ReactionSame: 12, models.ReactionHelpful: 8, models.ReactionUpvote: 15},
		},
		{
			Content:        "Finally got promoted after 2 years! But now I'm terrified I'm not good enough for the new role. Anyone else feel like this?",
			Tags:           []string{"promotion", "impostersyndrome", "career"},
			CreatedAt:      now.Add(-5 * time.Hour),
			ReactionCounts: map[models.ReactionType]int{models.ReactionSame: 25, models.ReactionHelpful: 18, models.ReactionUpvote: 32},
		},
		{
			Content:        "Reminder that it's okay to not have a five-year plan. Some of us are just trying to get through the week.",
			Tags:           []string{"career", "mentalhealth"},
			CreatedAt:      now.Add(-8 * time.Hour),
			ReactionCounts: models.NewReactionCounts(),
		},
		{
			Content:        "Keeping this one to myself: thinking about quitting without another offer lined up.",
			Tags:           []string{"quitting"},
			IsPrivate:      true,
			CreatedAt:      now.Add(-12 * time.Hour),
			ReactionCounts: models.NewReactionCounts(),
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := st.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}()

	db, err := st.Database()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}

	postRepo := repositories.NewMongoPostRepository(db)
	reactionRepo := repositories.NewMongoReactionRepository(db)

	now := time.Now().UTC()
	posts := samplePosts(now)
	for i := range posts {
		if err := postRepo.Create(ctx, &posts[i]); err != nil {
			log.Fatalf("Failed to insert sample post: %v", err)
		}
	}
	log.Printf("Inserted %d sample posts.", len(posts))

	reactions := []models.Reaction{
		{PostID: posts[0].ID, ReactionType: models.ReactionSame, CreatedAt: now.Add(-90 * time.Minute)},
		{PostID: posts[0].ID, ReactionType: models.ReactionUpvote, CreatedAt: now.Add(-80 * time.Minute)},
		{PostID: posts[1].ID, ReactionType: models.ReactionHelpful, CreatedAt: now.Add(-4 * time.Hour)},
	}
	for i := range reactions {
		if err := reactionRepo.Create(ctx, &reactions[i]); err != nil {
			log.Fatalf("Failed to insert sample reaction: %v", err)
		}
	}
	log.Printf("Inserted %d sample reactions.", len(reactions))
}
