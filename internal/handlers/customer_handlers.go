package handlers

import (
	"net/http"

	"festiloc/internal/common"
	"festiloc/internal/models"
	"festiloc/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandlers handles the back-office customer directory.
type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

type customerRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	PostCode  *string `json:"post_code"`
}

func (r *customerRequest) toModel() *models.Customer {
	return &models.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Address:   r.Address,
		City:      r.City,
		PostCode:  r.PostCode,
	}
}

// ListCustomers handles GET /admin/customers?q=
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	limit, offset := common.ParsePaginationParams(c, 20)

	customers, err := h.customerService.Search(c.Request().Context(), c.QueryParam("q"), limit, offset)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}

// GetCustomer handles GET /admin/customers/:id
func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	customer, err := h.customerService.Get(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Customer")
	}
	return c.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /admin/customers
func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	customer := req.toModel()
	if err := h.customerService.Create(c.Request().Context(), customer); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /admin/customers/:id
func (h *CustomerHandlers) UpdateCustomer(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	customer := req.toModel()
	customer.ID = id
	if err := h.customerService.Update(c.Request().Context(), customer); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /admin/customers/:id
func (h *CustomerHandlers) DeleteCustomer(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.customerService.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
