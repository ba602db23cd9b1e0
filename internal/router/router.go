package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/unlinked/backend/internal/handlers"
	"github.com/unlinked/backend/internal/middleware"
	"github.com/unlinked/backend/internal/repositories"
	"github.com/unlinked/backend/internal/services"
	"github.com/unlinked/backend/internal/store"
	"github.com/unlinked/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(middleware.TrustedHost(cfg.TrustedHosts))
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		MaxAge:       3600,
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
func SetupRoutes(e *echo.Echo, st *store.Store, cfg *config.Config) error {
	db, err := st.Database()
	if err != nil {
		return err
	}

	// Health check - always accessible
	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Unlinked API"})
	})

	postRepo := repositories.NewMongoPostRepository(db)
	reactionRepo := repositories.NewMongoReactionRepository(db)

	postService := services.NewPostService(postRepo, services.LimitsFromConfig(cfg))
	reactionService := services.NewReactionService(reactionRepo, postRepo)

	api := e.Group("/api/v1")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	reactionHandler := handlers.NewReactionHandler(reactionService)
	reactionHandler.RegisterReactionRoutes(api)
	log.Println("Reaction routes configured.")

	return nil
}
