package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imovies/internal/utils"
)

func runProtected(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"email": c.Get("email"),
			"role":  c.Get("role"),
		})
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", "user@imovies.local", "USER", 15)
	require.NoError(t, err)

	rec := runProtected(t, []echo.MiddlewareFunc{JWTAuth("secret")}, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@imovies.local")
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := runProtected(t, []echo.MiddlewareFunc{JWTAuth("secret")}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other", "user@imovies.local", "USER", 15)
	require.NoError(t, err)

	rec := runProtected(t, []echo.MiddlewareFunc{JWTAuth("secret")}, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleEnforcesRole(t *testing.T) {
	userTok, err := utils.NewAccessToken("secret", "user@imovies.local", "USER", 15)
	require.NoError(t, err)
	adminTok, err := utils.NewAccessToken("secret", "admin@imovies.local", "ADMIN", 15)
	require.NoError(t, err)

	chain := []echo.MiddlewareFunc{JWTAuth("secret"), RequireRole("ADMIN")}

	rec := runProtected(t, chain, "Bearer "+userTok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = runProtected(t, chain, "Bearer "+adminTok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
