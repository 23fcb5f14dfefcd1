package repositories

import (
	"context"

	"festiloc/internal/models"

	"github.com/google/uuid"
)

// CategoryRepository covers all three levels of the hierarchy. Slug
// uniqueness among siblings is enforced by partial unique indexes; the
// service layer turns the violation into a caller-facing error.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)

	CreateSubcategory(ctx context.Context, sub *models.Subcategory) error
	UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
	ListSubcategories(ctx context.Context) ([]*models.Subcategory, error)

	CreateSubSubcategory(ctx context.Context, subsub *models.SubSubcategory) error
	UpdateSubSubcategory(ctx context.Context, subsub *models.SubSubcategory) error
	DeleteSubSubcategory(ctx context.Context, id uuid.UUID) error
	ListSubSubcategories(ctx context.Context) ([]*models.SubSubcategory, error)
}

type categoryRepo struct {
	db Database
}

func NewCategoryRepo(db Database) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, category.ID, category.Name, category.Slug,
		category.OrderIndex, category.Description, category.SEOTitle, category.SEODescription)
	return err
}

func (r *categoryRepo) UpdateCategory(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, slug = $2, order_index = $3, description = $4, seo_title = $5, seo_description = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, category.Name, category.Slug, category.OrderIndex,
		category.Description, category.SEOTitle, category.SEODescription, category.ID)
	return err
}

func (r *categoryRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *categoryRepo) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	query := `
		SELECT id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug,
		&category.OrderIndex, &category.Description, &category.SEOTitle, &category.SEODescription,
		&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) ListCategories(ctx context.Context) ([]*models.Category, error) {
	query := `
		SELECT id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at
		FROM categories
		ORDER BY order_index ASC, slug ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.OrderIndex,
			&category.Description, &category.SEOTitle, &category.SEODescription,
			&category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, category_id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, sub.ID, sub.CategoryID, sub.Name, sub.Slug,
		sub.OrderIndex, sub.Description, sub.SEOTitle, sub.SEODescription)
	return err
}

func (r *categoryRepo) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	query := `
		UPDATE subcategories
		SET category_id = $1, name = $2, slug = $3, order_index = $4, description = $5, seo_title = $6, seo_description = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, sub.CategoryID, sub.Name, sub.Slug, sub.OrderIndex,
		sub.Description, sub.SEOTitle, sub.SEODescription, sub.ID)
	return err
}

func (r *categoryRepo) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	return err
}

func (r *categoryRepo) ListSubcategories(ctx context.Context) ([]*models.Subcategory, error) {
	query := `
		SELECT id, category_id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at
		FROM subcategories
		ORDER BY order_index ASC, slug ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subcategory
	for rows.Next() {
		sub := &models.Subcategory{}
		if err := rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.Slug, &sub.OrderIndex,
			&sub.Description, &sub.SEOTitle, &sub.SEODescription,
			&sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *categoryRepo) CreateSubSubcategory(ctx context.Context, subsub *models.SubSubcategory) error {
	query := `
		INSERT INTO subsubcategories (id, subcategory_id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, subsub.ID, subsub.SubcategoryID, subsub.Name, subsub.Slug,
		subsub.OrderIndex, subsub.Description, subsub.SEOTitle, subsub.SEODescription)
	return err
}

func (r *categoryRepo) UpdateSubSubcategory(ctx context.Context, subsub *models.SubSubcategory) error {
	query := `
		UPDATE subsubcategories
		SET subcategory_id = $1, name = $2, slug = $3, order_index = $4, description = $5, seo_title = $6, seo_description = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, subsub.SubcategoryID, subsub.Name, subsub.Slug, subsub.OrderIndex,
		subsub.Description, subsub.SEOTitle, subsub.SEODescription, subsub.ID)
	return err
}

func (r *categoryRepo) DeleteSubSubcategory(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subsubcategories WHERE id = $1`, id)
	return err
}

func (r *categoryRepo) ListSubSubcategories(ctx context.Context) ([]*models.SubSubcategory, error) {
	query := `
		SELECT id, subcategory_id, name, slug, order_index, description, seo_title, seo_description, created_at, updated_at
		FROM subsubcategories
		ORDER BY order_index ASC, slug ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subsubs []*models.SubSubcategory
	for rows.Next() {
		subsub := &models.SubSubcategory{}
		if err := rows.Scan(&subsub.ID, &subsub.SubcategoryID, &subsub.Name, &subsub.Slug, &subsub.OrderIndex,
			&subsub.Description, &subsub.SEOTitle, &subsub.SEODescription,
			&subsub.CreatedAt, &subsub.UpdatedAt); err != nil {
			return nil, err
		}
		subsubs = append(subsubs, subsub)
	}
	return subsubs, rows.Err()
}
