package categories

import (
	"net/http"

	"scrap-pickup/internal/models"
	"scrap-pickup/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the scrap catalog.
type Handler struct {
	svc ServiceInterface
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListCategories(c echo.Context) error {
	cats, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
	}
	return utils.RespondWithJSON(c, http.StatusOK, cats)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	cat, err := h.svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	categoryID := c.Param("categoryId")

	var req models.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	cat, err := h.svc.UpdateCategory(c.Request().Context(), categoryID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.svc.DeleteCategory(c.Request().Context(), c.Param("categoryId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
