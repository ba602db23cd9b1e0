package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/services"
)

// PostHandler handles HTTP requests related to posts.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
}

// CreatePost creates a new anonymous post.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.CreatePost(c.Request().Context(), services.CreatePostInput{
		Content:   req.Content,
		Tags:      req.Tags,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// GetPosts returns one page of the public feed, newest first.
func (h *PostHandler) GetPosts(c echo.Context) error {
	var skip, limit int64
	var err error

	if v := c.QueryParam("skip"); v != "" {
		if skip, err = strconv.ParseInt(v, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "skip must be an integer")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if limit, err = strconv.ParseInt(v, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		// A zero limit below the service layer means the parameter was
		// absent; an explicit 0 is out of range.
		if limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit out of range")
		}
	}

	posts, err := h.postService.ListPosts(c.Request().Context(), skip, limit, c.QueryParam("tag"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID.
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, post)
}
