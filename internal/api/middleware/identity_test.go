package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"scrap-pickup/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	user *models.User
	err  error
}

func (s *stubResolver) ResolveByPhone(context.Context, string) (*models.User, error) {
	return s.user, s.err
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, setup func(echo.Context)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestResolveIdentity(t *testing.T) {
	t.Run("resolves phone to user", func(t *testing.T) {
		resolver := &stubResolver{user: &models.User{ID: "user-1", Role: models.RoleCustomer}}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("userPhone", "9876543210")

		handler := ResolveIdentity(resolver)(func(c echo.Context) error {
			assert.Equal(t, "user-1", c.Get("userID"))
			assert.Equal(t, models.RoleCustomer, c.Get("userRole"))
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
	})

	t.Run("missing phone claim", func(t *testing.T) {
		rec, reached := runMiddleware(t, ResolveIdentity(&stubResolver{}), nil)
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("resolver failure", func(t *testing.T) {
		resolver := &stubResolver{err: fmt.Errorf("connection refused")}
		rec, reached := runMiddleware(t, ResolveIdentity(resolver), func(c echo.Context) {
			c.Set("userPhone", "9876543210")
		})
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleRequired(t *testing.T) {
	t.Run("allows listed role", func(t *testing.T) {
		_, reached := runMiddleware(t, RoleRequired(models.RoleVendor), func(c echo.Context) {
			c.Set("userRole", models.RoleVendor)
		})
		assert.True(t, reached)
	})

	t.Run("blocks other roles", func(t *testing.T) {
		rec, reached := runMiddleware(t, RoleRequired(models.RoleVendor), func(c echo.Context) {
			c.Set("userRole", models.RoleCustomer)
		})
		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin gate", func(t *testing.T) {
		rec, reached := runMiddleware(t, AdminRequired(), func(c echo.Context) {
			c.Set("userRole", models.RoleCustomer)
		})
		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
