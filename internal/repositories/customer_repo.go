package repositories

import (
	"context"

	"festiloc/internal/models"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Customer, error)
}

type customerRepo struct {
	db Database
}

func NewCustomerRepo(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

const customerColumns = `id, first_name, last_name, email, phone, company, address, city, post_code, created_at, updated_at`

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, email, phone, company, address, city, post_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.FirstName, customer.LastName,
		customer.Email, customer.Phone, customer.Company, customer.Address, customer.City, customer.PostCode)
	return err
}

func (r *customerRepo) scan(row interface{ Scan(dest ...any) error }) (*models.Customer, error) {
	customer := &models.Customer{}
	err := row.Scan(&customer.ID, &customer.FirstName, &customer.LastName, &customer.Email,
		&customer.Phone, &customer.Company, &customer.Address, &customer.City, &customer.PostCode,
		&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE LOWER(email) = LOWER($1)`, email))
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone = $4, company = $5,
		    address = $6, city = $7, post_code = $8, updated_at = NOW()
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query, customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Company, customer.Address, customer.City, customer.PostCode, customer.ID)
	return err
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *customerRepo) list(ctx context.Context, query string, args ...any) ([]*models.Customer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepo) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *customerRepo) Search(ctx context.Context, search string, limit, offset int) ([]*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE LOWER(first_name) LIKE LOWER($1)
		   OR LOWER(last_name) LIKE LOWER($1)
		   OR LOWER(email) LIKE LOWER($1)
		   OR LOWER(COALESCE(company, '')) LIKE LOWER($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, "%"+search+"%", limit, offset)
}
