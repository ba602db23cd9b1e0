package middleware

import (
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// TrustedHost rejects requests whose Host header is not in the allow-list.
// An empty allow-list permits every host.
func TrustedHost(allowedHosts []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		allowed[h] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			host := c.Request().Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if _, ok := allowed[host]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Invalid host header")
			}
			return next(c)
		}
	}
}
