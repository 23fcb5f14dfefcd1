package handlers

import (
	"net/http"

	"festiloc/internal/common"
	"festiloc/internal/services"

	"github.com/labstack/echo/v4"
)

// CompareHandlers serves the bounded product comparison selection.
type CompareHandlers struct {
	compareService services.CompareService
}

func NewCompareHandlers(compareService services.CompareService) *CompareHandlers {
	return &CompareHandlers{compareService: compareService}
}

// GetComparison handles GET /compare
func (h *CompareHandlers) GetComparison(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	set, err := h.compareService.Get(c.Request().Context(), session)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, set)
}

// AddProduct handles POST /compare/:product_id. Adding past the cap or
// re-adding a member returns the unchanged set.
func (h *CompareHandlers) AddProduct(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	productID, err := common.ParseUUID(c.Param("product_id"), "product_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	set, err := h.compareService.Add(c.Request().Context(), session, productID)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, set)
}

// RemoveProduct handles DELETE /compare/:product_id
func (h *CompareHandlers) RemoveProduct(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	productID, err := common.ParseUUID(c.Param("product_id"), "product_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	set, err := h.compareService.Remove(c.Request().Context(), session, productID)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, set)
}

// ClearComparison handles DELETE /compare
func (h *CompareHandlers) ClearComparison(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.compareService.Clear(c.Request().Context(), session); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Comparison cleared"})
}
