package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetPageLimit reads ?page= and ?limit= query params with sane bounds.
func GetPageLimit(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
