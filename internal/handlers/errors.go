package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unlinked/backend/internal/repositories"
	"github.com/unlinked/backend/internal/validation"
)

// toHTTPError translates service errors into HTTP responses. Validation
// failures carry their reason; store failures surface a generic message so
// internal detail never leaks to the caller.
func toHTTPError(err error) *echo.HTTPError {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
	case errors.Is(err, repositories.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, repositories.ErrReactionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Reaction not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
