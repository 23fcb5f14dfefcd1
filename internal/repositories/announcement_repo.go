package repositories

import (
	"context"

	"festiloc/internal/models"

	"github.com/google/uuid"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Announcement, error)
	ListActive(ctx context.Context) ([]*models.Announcement, error)
	DeactivateExpired(ctx context.Context) (int64, error)
}

type announcementRepo struct {
	db Database
}

func NewAnnouncementRepo(db Database) AnnouncementRepository {
	return &announcementRepo{db: db}
}

const announcementColumns = `id, title, message, is_active, starts_at, ends_at, created_at, updated_at`

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	query := `
		INSERT INTO announcements (id, title, message, is_active, starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Message, a.IsActive, a.StartsAt, a.EndsAt)
	return err
}

func (r *announcementRepo) scan(row interface{ Scan(dest ...any) error }) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Message, &a.IsActive, &a.StartsAt, &a.EndsAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *announcementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
}

func (r *announcementRepo) Update(ctx context.Context, a *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $1, message = $2, is_active = $3, starts_at = $4, ends_at = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, a.Title, a.Message, a.IsActive, a.StartsAt, a.EndsAt, a.ID)
	return err
}

func (r *announcementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}

func (r *announcementRepo) list(ctx context.Context, query string) ([]*models.Announcement, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *announcementRepo) List(ctx context.Context) ([]*models.Announcement, error) {
	return r.list(ctx, `SELECT `+announcementColumns+` FROM announcements ORDER BY created_at DESC`)
}

// ListActive returns the banners currently inside their display window.
func (r *announcementRepo) ListActive(ctx context.Context) ([]*models.Announcement, error) {
	return r.list(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE is_active
		  AND (starts_at IS NULL OR starts_at <= NOW())
		  AND (ends_at IS NULL OR ends_at >= NOW())
		ORDER BY created_at DESC
	`)
}

// DeactivateExpired flips is_active off for rows whose window has passed.
// Ran by the hourly sweep job.
func (r *announcementRepo) DeactivateExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE announcements
		SET is_active = FALSE, updated_at = NOW()
		WHERE is_active AND ends_at IS NOT NULL AND ends_at < NOW()
	`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
