package repositories

import (
	"context"

	"festiloc/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error)
	ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Product, error)
	ListBySubSubcategory(ctx context.Context, subsubcategoryID uuid.UUID) ([]*models.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Product, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, name, slug, reference, price_ttc, category_id, subcategory_id, subsubcategory_id,
	       colors, images, main_image_index, is_available, description, seo_title, seo_description,
	       created_at, updated_at`

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, slug, reference, price_ttc, category_id, subcategory_id, subsubcategory_id,
		                      colors, images, main_image_index, is_available, description, seo_title, seo_description,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.Slug, product.Reference, product.PriceTTC,
		product.CategoryID, product.SubcategoryID, product.SubSubcategoryID,
		product.Colors, product.Images, product.MainImageIndex, product.IsAvailable,
		product.Description, product.SEOTitle, product.SEODescription)
	return err
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(
		&product.ID, &product.Name, &product.Slug, &product.Reference, &product.PriceTTC,
		&product.CategoryID, &product.SubcategoryID, &product.SubSubcategoryID,
		&product.Colors, &product.Images, &product.MainImageIndex, &product.IsAvailable,
		&product.Description, &product.SEOTitle, &product.SEODescription,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRow(ctx, query, id))
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return scanProduct(r.db.QueryRow(ctx, query, slug))
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, slug = $2, reference = $3, price_ttc = $4,
		    category_id = $5, subcategory_id = $6, subsubcategory_id = $7,
		    colors = $8, images = $9, main_image_index = $10, is_available = $11,
		    description = $12, seo_title = $13, seo_description = $14, updated_at = NOW()
		WHERE id = $15
	`
	_, err := r.db.Exec(ctx, query,
		product.Name, product.Slug, product.Reference, product.PriceTTC,
		product.CategoryID, product.SubcategoryID, product.SubSubcategoryID,
		product.Colors, product.Images, product.MainImageIndex, product.IsAvailable,
		product.Description, product.SEOTitle, product.SEODescription, product.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *productRepo) list(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// List returns the whole catalog in creation order, newest first. The
// in-memory filter pipeline takes it from there.
func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, categoryID)
}

func (r *productRepo) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE subcategory_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, subcategoryID)
}

func (r *productRepo) ListBySubSubcategory(ctx context.Context, subsubcategoryID uuid.UUID) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE subsubcategory_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, subsubcategoryID)
}

func (r *productRepo) Search(ctx context.Context, search string, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE LOWER(name) LIKE LOWER($1) OR LOWER(reference) LIKE LOWER($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, "%"+search+"%", limit, offset)
}
