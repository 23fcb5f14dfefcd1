package handlers

import (
	"net/http"
	"strings"

	"festiloc/internal/common"
	"festiloc/internal/models"
	"festiloc/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductAdminHandlers handles the back-office product CRUD and image
// uploads.
type ProductAdminHandlers struct {
	catalogService services.CatalogService
}

func NewProductAdminHandlers(catalogService services.CatalogService) *ProductAdminHandlers {
	return &ProductAdminHandlers{catalogService: catalogService}
}

type productRequest struct {
	Name             string   `json:"name" validate:"required"`
	Slug             string   `json:"slug"`
	Reference        string   `json:"reference"`
	PriceTTC         float64  `json:"price_ttc" validate:"required,gt=0"`
	CategoryID       *string  `json:"category_id"`
	SubcategoryID    *string  `json:"subcategory_id"`
	SubSubcategoryID *string  `json:"subsubcategory_id"`
	Colors           []string `json:"colors"`
	Images           []string `json:"images"`
	MainImageIndex   int      `json:"main_image_index" validate:"gte=0"`
	IsAvailable      bool     `json:"is_available"`
	Description      *string  `json:"description"`
	SEOTitle         *string  `json:"seo_title"`
	SEODescription   *string  `json:"seo_description"`
}

func (r *productRequest) toModel() (*models.Product, error) {
	product := &models.Product{
		Name:           strings.TrimSpace(r.Name),
		Slug:           r.Slug,
		Reference:      r.Reference,
		PriceTTC:       r.PriceTTC,
		Colors:         r.Colors,
		Images:         r.Images,
		MainImageIndex: r.MainImageIndex,
		IsAvailable:    r.IsAvailable,
		Description:    r.Description,
		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
	}

	for _, link := range []struct {
		raw  *string
		dest **uuid.UUID
		name string
	}{
		{r.CategoryID, &product.CategoryID, "category_id"},
		{r.SubcategoryID, &product.SubcategoryID, "subcategory_id"},
		{r.SubSubcategoryID, &product.SubSubcategoryID, "subsubcategory_id"},
	} {
		if link.raw == nil || *link.raw == "" {
			continue
		}
		id, err := common.ParseUUID(*link.raw, link.name)
		if err != nil {
			return nil, err
		}
		*link.dest = &id
	}
	return product, nil
}

// CreateProduct handles POST /admin/products
func (h *ProductAdminHandlers) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := req.toModel()
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.catalogService.CreateProduct(c.Request().Context(), product); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *ProductAdminHandlers) UpdateProduct(c echo.Context) error {
	productID, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := req.toModel()
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	product.ID = productID

	if err := h.catalogService.UpdateProduct(c.Request().Context(), product); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *ProductAdminHandlers) DeleteProduct(c echo.Context) error {
	productID, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.catalogService.DeleteProduct(c.Request().Context(), productID); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// UploadImage handles POST /admin/products/:id/images (multipart form,
// field name "image").
func (h *ProductAdminHandlers) UploadImage(c echo.Context) error {
	productID, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return common.SendValidationError(c, "image", "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "failed to read uploaded file")
	}
	defer file.Close()

	product, err := h.catalogService.UploadProductImage(c.Request().Context(), productID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Image uploaded successfully",
		"product": product,
	})
}
