package vendors

import (
	"net/http"

	"scrap-pickup/internal/models"
	"scrap-pickup/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for vendor onboarding and management.
type Handler struct {
	svc ServiceInterface
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Onboard(c echo.Context) error {
	var req models.OnboardVendorRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	vendor, err := h.svc.Onboard(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusCreated, vendor)
}

func (h *Handler) ListVendors(c echo.Context) error {
	page, limit := utils.GetPageLimit(c)
	activeOnly := c.QueryParam("active") == "true"

	vendorList, total, err := h.svc.ListVendors(c.Request().Context(), activeOnly, page, limit)
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vendors")
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]interface{}{"vendors": vendorList, "total": total})
}

func (h *Handler) GetMyVendorProfile(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	vendor, err := h.svc.GetMine(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, vendor)
}

func (h *Handler) SetVendorActive(c echo.Context) error {
	vendorID := c.Param("vendorId")

	var req models.SetVendorActiveRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.svc.SetActive(c.Request().Context(), vendorID, *req.IsActive); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateLocation(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.UpdateVendorLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateLocation(c.Request().Context(), userID, req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
