package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/services"
)

// ReactionHandler handles HTTP requests related to reactions.
type ReactionHandler struct {
	reactionService *services.ReactionService
}

// NewReactionHandler creates a new ReactionHandler.
func NewReactionHandler(reactionService *services.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// RegisterReactionRoutes registers reaction-related routes.
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/reactions", h.CreateReaction)
	g.GET("/posts/:post_id/reactions/count", h.GetReactionCounts)
}

// CreateReaction records an anonymous reaction to a post.
func (h *ReactionHandler) CreateReaction(c echo.Context) error {
	var req models.CreateReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reaction, err := h.reactionService.CreateReaction(c.Request().Context(), c.Param("post_id"), req.ReactionType)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, reaction)
}

// GetReactionCounts returns per-type reaction counts for a post.
func (h *ReactionHandler) GetReactionCounts(c echo.Context) error {
	counts, err := h.reactionService.CountReactions(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, counts)
}
