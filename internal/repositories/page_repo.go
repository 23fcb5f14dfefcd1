package repositories

import (
	"context"

	"festiloc/internal/models"

	"github.com/google/uuid"
)

type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, publishedOnly bool) ([]*models.Page, error)
}

type pageRepo struct {
	db Database
}

func NewPageRepo(db Database) PageRepository {
	return &pageRepo{db: db}
}

const pageColumns = `id, slug, title, content, seo_title, seo_description, is_published, created_at, updated_at`

func (r *pageRepo) Create(ctx context.Context, page *models.Page) error {
	query := `
		INSERT INTO pages (id, slug, title, content, seo_title, seo_description, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, page.ID, page.Slug, page.Title, page.Content,
		page.SEOTitle, page.SEODescription, page.IsPublished)
	return err
}

func (r *pageRepo) scan(row interface{ Scan(dest ...any) error }) (*models.Page, error) {
	page := &models.Page{}
	err := row.Scan(&page.ID, &page.Slug, &page.Title, &page.Content,
		&page.SEOTitle, &page.SEODescription, &page.IsPublished, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (r *pageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id))
}

func (r *pageRepo) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug))
}

func (r *pageRepo) Update(ctx context.Context, page *models.Page) error {
	query := `
		UPDATE pages
		SET slug = $1, title = $2, content = $3, seo_title = $4, seo_description = $5, is_published = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, page.Slug, page.Title, page.Content,
		page.SEOTitle, page.SEODescription, page.IsPublished, page.ID)
	return err
}

func (r *pageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	return err
}

func (r *pageRepo) List(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages`
	if publishedOnly {
		query += ` WHERE is_published`
	}
	query += ` ORDER BY title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		page, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}
