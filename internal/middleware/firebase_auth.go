package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/models"
)

// PrincipalContextKey is the Echo context key holding the authenticated Principal
const PrincipalContextKey = "principal"

// FirebaseAuthMiddleware creates an Echo middleware that verifies Firebase ID
// tokens and stores the resulting Principal in the request context
func FirebaseAuthMiddleware(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
			}

			idToken := tokenParts[1]

			// Verify the ID token
			token, err := authClient.VerifyIDToken(c.Request().Context(), idToken)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("Invalid or expired ID token: %v", err))
			}

			c.Set(PrincipalContextKey, PrincipalFromToken(token))

			return next(c)
		}
	}
}

// PrincipalFromToken builds a Principal from a verified ID token's claims
func PrincipalFromToken(token *auth.Token) models.Principal {
	principal := models.Principal{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		principal.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		principal.AvatarURL = picture
	}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	return principal
}

// CurrentPrincipal extracts the Principal set by FirebaseAuthMiddleware
func CurrentPrincipal(c echo.Context) (models.Principal, bool) {
	principal, ok := c.Get(PrincipalContextKey).(models.Principal)
	return principal, ok && principal.UID != ""
}
