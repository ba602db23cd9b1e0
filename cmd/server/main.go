package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/unlinked/backend/internal/router"
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

	e := echo.New()
	router.SetupMiddleware(e, cfg)
	if err := router.SetupRoutes(e, st, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
