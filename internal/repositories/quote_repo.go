package repositories

import (
	"context"

	"festiloc/internal/models"

	"github.com/google/uuid"
)

type QuoteRepository interface {
	// Create inserts the request and its line items in one transaction.
	Create(ctx context.Context, quote *models.QuoteRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status string, limit, offset int) ([]*models.QuoteRequest, error)
}

type quoteRepo struct {
	db Database
}

func NewQuoteRepo(db Database) QuoteRepository {
	return &quoteRepo{db: db}
}

const quoteColumns = `id, customer_id, first_name, last_name, email, phone, event_date, message, status, created_at, updated_at`

func (r *quoteRepo) Create(ctx context.Context, quote *models.QuoteRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO quote_requests (id, customer_id, first_name, last_name, email, phone, event_date, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, quote.ID, quote.CustomerID, quote.FirstName, quote.LastName,
		quote.Email, quote.Phone, quote.EventDate, quote.Message, quote.Status); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO quote_request_items (id, quote_request_id, product_id, product_name, price_ttc, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range quote.Items {
		if _, err := tx.Exec(ctx, itemQuery, item.ID, item.QuoteRequestID,
			item.ProductID, item.ProductName, item.PriceTTC, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *quoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	quote := &models.QuoteRequest{}
	query := `SELECT ` + quoteColumns + ` FROM quote_requests WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&quote.ID, &quote.CustomerID, &quote.FirstName,
		&quote.LastName, &quote.Email, &quote.Phone, &quote.EventDate, &quote.Message, &quote.Status,
		&quote.CreatedAt, &quote.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	quote.Items = items
	return quote, nil
}

func (r *quoteRepo) listItems(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteRequestItem, error) {
	query := `
		SELECT id, quote_request_id, product_id, product_name, price_ttc, quantity
		FROM quote_request_items
		WHERE quote_request_id = $1
		ORDER BY product_name ASC
	`
	rows, err := r.db.Query(ctx, query, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.QuoteRequestItem
	for rows.Next() {
		var item models.QuoteRequestItem
		if err := rows.Scan(&item.ID, &item.QuoteRequestID, &item.ProductID,
			&item.ProductName, &item.PriceTTC, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *quoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE quote_requests SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

func (r *quoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM quote_requests WHERE id = $1`, id)
	return err
}

// List returns request headers without line items; the admin detail view
// loads items through GetByID. An empty status means no status filter.
func (r *quoteRepo) List(ctx context.Context, status string, limit, offset int) ([]*models.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*models.QuoteRequest
	for rows.Next() {
		quote := &models.QuoteRequest{}
		if err := rows.Scan(&quote.ID, &quote.CustomerID, &quote.FirstName, &quote.LastName,
			&quote.Email, &quote.Phone, &quote.EventDate, &quote.Message, &quote.Status,
			&quote.CreatedAt, &quote.UpdatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}
