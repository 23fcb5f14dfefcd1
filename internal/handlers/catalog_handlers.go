package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"festiloc/internal/catalog"
	"festiloc/internal/common"
	"festiloc/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CatalogHandlers serves the storefront catalog: navigation tree, product
// listings with filters, and product detail pages.
type CatalogHandlers struct {
	catalogService services.CatalogService
}

func NewCatalogHandlers(catalogService services.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService}
}

// CategoryTree handles GET /categories
func (h *CatalogHandlers) CategoryTree(c echo.Context) error {
	tree, err := h.catalogService.Tree(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tree)
}

// ListProducts handles GET /products with the full filter query surface.
func (h *CatalogHandlers) ListProducts(c echo.Context) error {
	return h.list(c, nil)
}

// ListByCategory handles the fixed category routes:
// GET /categories/:category/products and the deeper variants.
func (h *CatalogHandlers) ListByCategory(c echo.Context) error {
	path := []string{c.Param("category")}
	if sub := c.Param("subcategory"); sub != "" {
		path = append(path, sub)
	}
	if subsub := c.Param("subsubcategory"); subsub != "" {
		path = append(path, subsub)
	}
	return h.list(c, path)
}

func (h *CatalogHandlers) list(c echo.Context, categoryPath []string) error {
	query := services.ListQuery{
		CategoryPath: categoryPath,
		Filter:       parseFilterState(c),
		Page:         parseIntParam(c, "page", 1),
		PageSize:     parseIntParam(c, "page_size", catalog.DefaultPageSize),
	}

	listing, err := h.catalogService.ListProducts(c.Request().Context(), query)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return common.SendNotFoundError(c, "Category")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listing)
}

// GetProduct handles GET /products/:slug
func (h *CatalogHandlers) GetProduct(c echo.Context) error {
	productSlug := c.Param("slug")
	if productSlug == "" {
		return common.SendValidationError(c, "slug", "product slug is required")
	}

	product, err := h.catalogService.GetProduct(c.Request().Context(), productSlug)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// SearchProducts handles GET /search?q=
func (h *CatalogHandlers) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	limit, offset := common.ParsePaginationParams(c, 20)

	products, err := h.catalogService.SearchProducts(c.Request().Context(), query, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"query":    query,
	})
}

// ProductImageURL handles GET /images/*, returning a presigned link.
func (h *CatalogHandlers) ProductImageURL(c echo.Context) error {
	objectName := c.Param("*")
	if objectName == "" {
		return common.SendValidationError(c, "object", "object name is required")
	}

	url, err := h.catalogService.ProductImageURL(c.Request().Context(), objectName, 1*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// parseFilterState maps the listing query parameters onto a filter state.
// Unknown values degrade to the defaults rather than erroring; a broken
// filter link should still render a product list.
func parseFilterState(c echo.Context) catalog.FilterState {
	state := catalog.FilterState{
		SortBy:       catalog.SortDefault,
		Availability: catalog.AvailabilityAll,
	}

	if raw := c.QueryParam("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			state.PriceMin = v
		}
	}
	if raw := c.QueryParam("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			state.PriceMax = v
		}
	}
	if key := catalog.SortKey(c.QueryParam("sort")); catalog.ValidSortKey(key) {
		state.SortBy = key
	}
	switch catalog.Availability(c.QueryParam("availability")) {
	case catalog.AvailabilityAvailable:
		state.Availability = catalog.AvailabilityAvailable
	case catalog.AvailabilityUnavailable:
		state.Availability = catalog.AvailabilityUnavailable
	}
	if raw := c.QueryParam("colors"); raw != "" {
		for _, color := range strings.Split(raw, ",") {
			if color = strings.TrimSpace(color); color != "" {
				state.Colors = append(state.Colors, color)
			}
		}
	}
	if raw := c.QueryParam("categories"); raw != "" {
		for _, idStr := range strings.Split(raw, ",") {
			if id, err := uuid.Parse(strings.TrimSpace(idStr)); err == nil {
				state.Categories = append(state.Categories, id)
			}
		}
	}
	return state
}

func parseIntParam(c echo.Context, name string, fallback int) int {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
