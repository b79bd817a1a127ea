package middleware

import (
	"context"
	"net/http"

	"scrap-pickup/internal/models"

	"github.com/labstack/echo/v4"
)

// IdentityResolver maps a verified phone number to a user record,
// auto-creating a customer-role row on first contact. Implemented by the
// users service.
type IdentityResolver interface {
	ResolveByPhone(ctx context.Context, phone string) (*models.User, error)
}

// ResolveIdentity runs after JWTAuth. It turns the phone claim into a user
// row and seeds the context with the user's ID and role, which every
// permission check downstream relies on.
func ResolveIdentity(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			phone, _ := c.Get("userPhone").(string)
			if phone == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "missing or invalid identity"})
			}

			user, err := resolver.ResolveByPhone(c.Request().Context(), phone)
			if err != nil {
				c.Logger().Errorf("identity resolution failed for %s: %v", phone, err)
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "could not resolve identity"})
			}

			c.Set("userID", user.ID)
			c.Set("userRole", user.Role)
			return next(c)
		}
	}
}

// AdminRequired allows only admin-role callers through.
func AdminRequired() echo.MiddlewareFunc {
	return RoleRequired(models.RoleAdmin)
}

// RoleRequired allows only the listed roles through.
func RoleRequired(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("userRole").(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: models.ErrForbidden.Error()})
		}
	}
}
