package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasarim-galerisi/backend/internal/models"
)

func invokeAdminGuard(t *testing.T, allowList []string, principal *models.Principal) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/designs/d1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(PrincipalContextKey, *principal)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	return AdminOnly(allowList)(next)(c)
}

func TestAdminOnlyAllowsListedEmail(t *testing.T) {
	err := invokeAdminGuard(t, []string{"admin@example.com"}, &models.Principal{UID: "u1", Email: "admin@example.com"})
	assert.NoError(t, err)
}

func TestAdminOnlyIsCaseInsensitive(t *testing.T) {
	err := invokeAdminGuard(t, []string{"Admin@Example.com"}, &models.Principal{UID: "u1", Email: "admin@example.COM"})
	assert.NoError(t, err)
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	err := invokeAdminGuard(t, []string{"admin@example.com"}, &models.Principal{UID: "u2", Email: "mallory@example.com"})

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAdminOnlyRejectsMissingPrincipal(t *testing.T) {
	err := invokeAdminGuard(t, []string{"admin@example.com"}, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAdminOnlyEmptyAllowListRejectsEveryone(t *testing.T) {
	err := invokeAdminGuard(t, nil, &models.Principal{UID: "u1", Email: "admin@example.com"})

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestPrincipalFromTokenClaims(t *testing.T) {
	token := &auth.Token{
		UID: "u1",
		Claims: map[string]interface{}{
			"name":    "Saygin",
			"picture": "https://img.example/avatar.png",
			"email":   "saygin@example.com",
		},
	}

	principal := PrincipalFromToken(token)
	assert.Equal(t, models.Principal{
		UID:       "u1",
		Name:      "Saygin",
		AvatarURL: "https://img.example/avatar.png",
		Email:     "saygin@example.com",
	}, principal)
}

func TestPrincipalFromTokenIgnoresMalformedClaims(t *testing.T) {
	// Claims arrive loosely typed from the identity provider; non-string
	// values must be ignored, not propagated.
	token := &auth.Token{
		UID: "u2",
		Claims: map[string]interface{}{
			"name":  42,
			"email": true,
		},
	}

	principal := PrincipalFromToken(token)
	assert.Equal(t, models.Principal{UID: "u2"}, principal)
}
