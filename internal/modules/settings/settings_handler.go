package settings

import (
	"net/http"

	"scrap-pickup/internal/models"
	"scrap-pickup/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles the admin settings endpoints.
type Handler struct {
	svc ServiceInterface
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListSettings(c echo.Context) error {
	list, err := h.svc.ListSettings(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
	}
	return utils.RespondWithJSON(c, http.StatusOK, list)
}

func (h *Handler) UpsertSetting(c echo.Context) error {
	var req models.UpsertSettingRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	setting, err := h.svc.UpsertSetting(c.Request().Context(), req.Key, req.Value)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, setting)
}
