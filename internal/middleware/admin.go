package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AdminOnly creates an Echo middleware allowing only principals whose email
// exactly matches the configured administrator allow-list
func AdminOnly(adminEmails []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := CurrentPrincipal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Operation requires a signed-in user")
			}
			if _, ok := allowed[strings.ToLower(principal.Email)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Administrator access required")
			}
			return next(c)
		}
	}
}
