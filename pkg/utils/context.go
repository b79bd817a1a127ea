package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys set by the identity middleware after the phone claim has been
// resolved to a user row.
const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserPhone = "userPhone"
)

// ExtractUserInfo returns the resolved user's ID and role from the request
// context. A missing ID means the identity middleware did not run or the
// token was invalid; the caller can return the error as-is.
func ExtractUserInfo(c echo.Context) (userID string, role string, err error) {
	userID, _ = c.Get(ContextUserID).(string)
	role, _ = c.Get(ContextUserRole).(string)
	if userID == "" {
		return "", "", RespondWithError(c, http.StatusUnauthorized, "missing or invalid identity")
	}
	return userID, role, nil
}
