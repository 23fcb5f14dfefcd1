package handlers

import (
	"fmt"
	"net/http"
	"time"

	"festiloc/internal/common"
	"festiloc/internal/models"
	"festiloc/internal/services"

	"github.com/labstack/echo/v4"
)

// ContentHandlers serves CMS pages and announcement banners, public reads
// plus the back-office CRUD.
type ContentHandlers struct {
	contentService services.ContentService
}

func NewContentHandlers(contentService services.ContentService) *ContentHandlers {
	return &ContentHandlers{contentService: contentService}
}

// GetPage handles GET /pages/:slug
func (h *ContentHandlers) GetPage(c echo.Context) error {
	page, err := h.contentService.GetPageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil || !page.IsPublished {
		return common.SendNotFoundError(c, "Page")
	}
	return c.JSON(http.StatusOK, page)
}

// ListPages handles GET /admin/pages
func (h *ContentHandlers) ListPages(c echo.Context) error {
	pages, err := h.contentService.ListPages(c.Request().Context(), false)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"pages": pages})
}

type pageRequest struct {
	Title          string  `json:"title" validate:"required"`
	Slug           string  `json:"slug"`
	Content        string  `json:"content"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	IsPublished    bool    `json:"is_published"`
}

// CreatePage handles POST /admin/pages
func (h *ContentHandlers) CreatePage(c echo.Context) error {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	page := &models.Page{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		IsPublished:    req.IsPublished,
	}
	if err := h.contentService.CreatePage(c.Request().Context(), page); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, page)
}

// UpdatePage handles PUT /admin/pages/:id
func (h *ContentHandlers) UpdatePage(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	page := &models.Page{
		ID:             id,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		IsPublished:    req.IsPublished,
	}
	if err := h.contentService.UpdatePage(c.Request().Context(), page); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// DeletePage handles DELETE /admin/pages/:id
func (h *ContentHandlers) DeletePage(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.contentService.DeletePage(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Page deleted successfully"})
}

// ActiveAnnouncements handles GET /announcements
func (h *ContentHandlers) ActiveAnnouncements(c echo.Context) error {
	announcements, err := h.contentService.ActiveAnnouncements(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"announcements": announcements})
}

// ListAnnouncements handles GET /admin/announcements
func (h *ContentHandlers) ListAnnouncements(c echo.Context) error {
	announcements, err := h.contentService.ListAnnouncements(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"announcements": announcements})
}

type announcementRequest struct {
	Title    string  `json:"title"`
	Message  string  `json:"message" validate:"required"`
	IsActive bool    `json:"is_active"`
	StartsAt *string `json:"starts_at"`
	EndsAt   *string `json:"ends_at"`
}

func (r *announcementRequest) toModel() (*models.Announcement, error) {
	a := &models.Announcement{
		Title:    r.Title,
		Message:  r.Message,
		IsActive: r.IsActive,
	}
	for _, window := range []struct {
		raw   *string
		dest  **time.Time
		field string
	}{
		{r.StartsAt, &a.StartsAt, "starts_at"},
		{r.EndsAt, &a.EndsAt, "ends_at"},
	} {
		if window.raw == nil || *window.raw == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, *window.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: expected an RFC 3339 timestamp", window.field)
		}
		*window.dest = &parsed
	}
	return a, nil
}

// CreateAnnouncement handles POST /admin/announcements
func (h *ContentHandlers) CreateAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	announcement, err := req.toModel()
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.contentService.CreateAnnouncement(c.Request().Context(), announcement); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement handles PUT /admin/announcements/:id
func (h *ContentHandlers) UpdateAnnouncement(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	announcement, err := req.toModel()
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	announcement.ID = id
	if err := h.contentService.UpdateAnnouncement(c.Request().Context(), announcement); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement handles DELETE /admin/announcements/:id
func (h *ContentHandlers) DeleteAnnouncement(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.contentService.DeleteAnnouncement(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}
