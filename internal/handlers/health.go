package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unlinked/backend/internal/store"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// HealthCheck probes the store. Store faults never propagate; they degrade
// to a 503 payload.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if !h.store.HealthCheck(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
