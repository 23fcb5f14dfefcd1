package services

import (
	"context"
	"errors"
	"time"

	"festiloc/internal/models"
	"festiloc/internal/repositories"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ContentService manages the admin-editable content: CMS pages and the
// site-wide announcement banners.
type ContentService interface {
	CreatePage(ctx context.Context, page *models.Page) error
	UpdatePage(ctx context.Context, page *models.Page) error
	DeletePage(ctx context.Context, id uuid.UUID) error
	GetPage(ctx context.Context, id uuid.UUID) (*models.Page, error)
	GetPageBySlug(ctx context.Context, pageSlug string) (*models.Page, error)
	ListPages(ctx context.Context, publishedOnly bool) ([]*models.Page, error)

	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	UpdateAnnouncement(ctx context.Context, a *models.Announcement) error
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
	ListAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	ActiveAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	ExpireAnnouncements(ctx context.Context) (int64, error)
}

type contentService struct {
	pageRepo         repositories.PageRepository
	announcementRepo repositories.AnnouncementRepository
}

func NewContentService(pageRepo repositories.PageRepository, announcementRepo repositories.AnnouncementRepository) ContentService {
	return &contentService{pageRepo: pageRepo, announcementRepo: announcementRepo}
}

func (s *contentService) CreatePage(ctx context.Context, page *models.Page) error {
	if page.Title == "" {
		return errors.New("page title is required")
	}
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	if page.Slug == "" {
		page.Slug = slug.Make(page.Title)
	}
	return s.pageRepo.Create(ctx, page)
}

func (s *contentService) UpdatePage(ctx context.Context, page *models.Page) error {
	if page.Title == "" {
		return errors.New("page title is required")
	}
	if page.Slug == "" {
		page.Slug = slug.Make(page.Title)
	}
	return s.pageRepo.Update(ctx, page)
}

func (s *contentService) DeletePage(ctx context.Context, id uuid.UUID) error {
	return s.pageRepo.Delete(ctx, id)
}

func (s *contentService) GetPage(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return s.pageRepo.GetByID(ctx, id)
}

func (s *contentService) GetPageBySlug(ctx context.Context, pageSlug string) (*models.Page, error) {
	return s.pageRepo.GetBySlug(ctx, pageSlug)
}

func (s *contentService) ListPages(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	return s.pageRepo.List(ctx, publishedOnly)
}

func (s *contentService) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return s.announcementRepo.Create(ctx, a)
}

func (s *contentService) UpdateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	return s.announcementRepo.Update(ctx, a)
}

func (s *contentService) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.announcementRepo.Delete(ctx, id)
}

func (s *contentService) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

func (s *contentService) ActiveAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.ListActive(ctx)
}

// ExpireAnnouncements deactivates banners whose display window has closed.
// The background sweep calls this hourly.
func (s *contentService) ExpireAnnouncements(ctx context.Context) (int64, error) {
	return s.announcementRepo.DeactivateExpired(ctx)
}

func validateAnnouncement(a *models.Announcement) error {
	if a.Message == "" {
		return errors.New("announcement message is required")
	}
	if a.StartsAt != nil && a.EndsAt != nil && a.EndsAt.Before(*a.StartsAt) {
		return errors.New("announcement window ends before it starts")
	}
	if a.EndsAt != nil && a.EndsAt.Before(time.Now()) && a.IsActive {
		return errors.New("cannot activate an announcement whose window has passed")
	}
	return nil
}
