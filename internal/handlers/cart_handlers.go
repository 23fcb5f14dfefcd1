package handlers

import (
	"net/http"

	"festiloc/internal/common"
	"festiloc/internal/models"
	"festiloc/internal/services"

	"github.com/labstack/echo/v4"
)

// CartHandlers serves the session quote cart.
type CartHandlers struct {
	cartService services.CartService
}

func NewCartHandlers(cartService services.CartService) *CartHandlers {
	return &CartHandlers{cartService: cartService}
}

func sessionID(c echo.Context) (string, error) {
	id, ok := common.GetSessionIDFromContext(c.Request().Context())
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Session not resolved")
	}
	return id, nil
}

// GetCart handles GET /cart
func (h *CartHandlers) GetCart(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartService.Get(c.Request().Context(), session)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, cart)
}

type addCartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Name      string  `json:"name" validate:"required"`
	PriceTTC  float64 `json:"price_ttc" validate:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
}

// AddItem handles POST /cart/items
func (h *CartHandlers) AddItem(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	productID, err := common.ParseUUID(req.ProductID, "product_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	cart, err := h.cartService.Add(c.Request().Context(), session, models.CartItem{
		ProductID: productID,
		Name:      req.Name,
		PriceTTC:  req.PriceTTC,
		Image:     req.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, cart)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT /cart/items/:product_id
func (h *CartHandlers) UpdateItem(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	productID, err := common.ParseUUID(c.Param("product_id"), "product_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	cart, err := h.cartService.UpdateQuantity(c.Request().Context(), session, productID, req.Quantity)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/:product_id
func (h *CartHandlers) RemoveItem(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	productID, err := common.ParseUUID(c.Param("product_id"), "product_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	cart, err := h.cartService.Remove(c.Request().Context(), session, productID)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, cart)
}

// ClearCart handles DELETE /cart
func (h *CartHandlers) ClearCart(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.cartService.Clear(c.Request().Context(), session); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// CartSummary handles GET /cart/summary
func (h *CartHandlers) CartSummary(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}
	summary, err := h.cartService.Summary(c.Request().Context(), session)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}
