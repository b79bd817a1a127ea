package utils

import (
	"errors"
	"net/http"

	"scrap-pickup/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithJSON writes a JSON payload with the given status code.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, payload)
}

// RespondWithError writes a JSON error body with the given status code.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Message: message})
}

// HandleServiceError maps service-layer sentinel errors onto the wire
// contract: 400 validation, 403 role/ownership, 404 unknown resource,
// 409 state conflicts, 500 everything else.
func HandleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrForbidden):
		return RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrPaymentModeRequired),
		errors.Is(err, models.ErrPaymentModeNotAllowed),
		errors.Is(err, models.ErrRejectionReasonRequired):
		return RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrBookingNotPending),
		errors.Is(err, models.ErrBookingNotAssigned),
		errors.Is(err, models.ErrBookingNotAssignable),
		errors.Is(err, models.ErrBookingNotCompleted),
		errors.Is(err, models.ErrReviewExists),
		errors.Is(err, models.ErrInvoiceVendorMissing),
		errors.Is(err, models.ErrVendorExists),
		errors.Is(err, models.ErrVendorInactive),
		errors.Is(err, models.ErrCategoryInUse):
		return RespondWithError(c, http.StatusConflict, err.Error())
	default:
		c.Logger().Errorf("unhandled service error: %v", err)
		return RespondWithError(c, http.StatusInternalServerError, "something went wrong")
	}
}
