package invoices

import (
	"net/http"

	"scrap-pickup/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for invoices.
type Handler struct {
	svc ServiceInterface
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetBookingInvoice(c echo.Context) error {
	userID, role, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	invoice, err := h.svc.GetForBooking(c.Request().Context(), c.Param("bookingId"), userID, role)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, invoice)
}

func (h *Handler) DownloadBookingInvoice(c echo.Context) error {
	userID, role, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	data, filename, err := h.svc.DownloadForBooking(c.Request().Context(), c.Param("bookingId"), userID, role)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (h *Handler) ListInvoices(c echo.Context) error {
	page, limit := utils.GetPageLimit(c)
	list, total, err := h.svc.ListInvoices(c.Request().Context(), page, limit)
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]interface{}{"invoices": list, "total": total})
}
