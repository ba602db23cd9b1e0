// Command schema provisions the four collections and their indexes. It is
// safe to re-run against an already-initialized database.
package main

import (
	"context"
	"log"

	"github.com/unlinked/backend/internal/store"
	"github.com/unlinked/backend/pkg/config"
)

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

	log.Printf("Setting up schema for database: %s", cfg.DatabaseName)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Schema setup finished with errors: %v", err)
	}
	log.Println("Schema setup completed successfully.")
}
