package handlers

import (
	"net/http"
	"strings"

	"festiloc/internal/common"
	"festiloc/internal/models"
	"festiloc/internal/repositories"
	"festiloc/internal/services"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
)

// CategoryHandlers handles the back-office category tree administration.
// Every mutation refreshes the cached navigation tree.
type CategoryHandlers struct {
	categoryRepo   repositories.CategoryRepository
	catalogService services.CatalogService
}

func NewCategoryHandlers(categoryRepo repositories.CategoryRepository, catalogService services.CatalogService) *CategoryHandlers {
	return &CategoryHandlers{categoryRepo: categoryRepo, catalogService: catalogService}
}

type categoryRequest struct {
	Name           string  `json:"name" validate:"required"`
	Slug           string  `json:"slug"`
	OrderIndex     int     `json:"order_index"`
	ParentID       *string `json:"parent_id"`
	Description    *string `json:"description"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
}

func (r *categoryRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Slug == "" {
		r.Slug = slug.Make(r.Name)
	}
}

func (r *categoryRequest) parentUUID() (uuid.UUID, error) {
	if r.ParentID == nil || *r.ParentID == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "parent_id is required at this level")
	}
	return common.ParseUUID(*r.ParentID, "parent_id")
}

func (h *CategoryHandlers) bind(c echo.Context) (*categoryRequest, error) {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	req.normalize()
	return &req, nil
}

func (h *CategoryHandlers) refreshTree(c echo.Context) {
	// a failed refresh self-heals on the next tree read
	h.catalogService.RefreshTree(c.Request().Context())
}

// CreateCategory handles POST /admin/categories
func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}

	category := &models.Category{
		ID:             uuid.New(),
		Name:           req.Name,
		Slug:           req.Slug,
		OrderIndex:     req.OrderIndex,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := h.categoryRepo.CreateCategory(c.Request().Context(), category); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /admin/categories/:id
func (h *CategoryHandlers) UpdateCategory(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}

	category := &models.Category{
		ID:             id,
		Name:           req.Name,
		Slug:           req.Slug,
		OrderIndex:     req.OrderIndex,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := h.categoryRepo.UpdateCategory(c.Request().Context(), category); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.categoryRepo.DeleteCategory(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// CreateSubcategory handles POST /admin/subcategories
func (h *CategoryHandlers) CreateSubcategory(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	parentID, err := req.parentUUID()
	if err != nil {
		return err
	}

	sub := &models.Subcategory{
		ID:             uuid.New(),
		CategoryID:     parentID,
		Name:           req.Name,
		Slug:           req.Slug,
		OrderIndex:     req.OrderIndex,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := h.categoryRepo.CreateSubcategory(c.Request().Context(), sub); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusCreated, sub)
}

// UpdateSubcategory handles PUT /admin/subcategories/:id
func (h *CategoryHandlers) UpdateSubcategory(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	parentID, err := req.parentUUID()
	if err != nil {
		return err
	}

	sub := &models.Subcategory{
		ID:             id,
		CategoryID:     parentID,
		Name:           req.Name,
		Slug:           req.Slug,
		OrderIndex:     req.OrderIndex,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := h.categoryRepo.UpdateSubcategory(c.Request().Context(), sub); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusOK, sub)
}

// DeleteSubcategory handles DELETE /admin/subcategories/:id
func (h *CategoryHandlers) DeleteSubcategory(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.categoryRepo.DeleteSubcategory(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Subcategory deleted successfully"})
}

// CreateSubSubcategory handles POST /admin/subsubcategories
func (h *CategoryHandlers) CreateSubSubcategory(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	parentID, err := req.parentUUID()
	if err != nil {
		return err
	}

	subsub := &models.SubSubcategory{
		ID:             uuid.New(),
		SubcategoryID:  parentID,
		Name:           req.Name,
		Slug:           req.Slug,
		OrderIndex:     req.OrderIndex,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := h.categoryRepo.CreateSubSubcategory(c.Request().Context(), subsub); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusCreated, subsub)
}

// UpdateSubSubcategory handles PUT /admin/subsubcategories/:id
func (h *CategoryHandlers) UpdateSubSubcategory(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	parentID, err := req.parentUUID()
	if err != nil {
		return err
	}

	subsub := &models.SubSubcategory{
		ID:             id,
		SubcategoryID:  parentID,
		Name:           req.Name,
		Slug:           req.Slug,
		OrderIndex:     req.OrderIndex,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := h.categoryRepo.UpdateSubSubcategory(c.Request().Context(), subsub); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusOK, subsub)
}

// DeleteSubSubcategory handles DELETE /admin/subsubcategories/:id
func (h *CategoryHandlers) DeleteSubSubcategory(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.categoryRepo.DeleteSubSubcategory(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	h.refreshTree(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Sub-subcategory deleted successfully"})
}
