package models

import (
	"time"

	"github.com/google/uuid"
)

// Quote request lifecycle. A request starts as new and moves forward only.
const (
	QuoteStatusNew        = "new"
	QuoteStatusProcessing = "processing"
	QuoteStatusQuoted     = "quoted"
	QuoteStatusClosed     = "closed"
)

// QuoteRequest is the rental equivalent of a checkout: the cart is copied
// into line items and submitted with the customer's contact details.
type QuoteRequest struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	CustomerID *uuid.UUID       `json:"customer_id" db:"customer_id"`
	FirstName  string           `json:"first_name" db:"first_name"`
	LastName   string           `json:"last_name" db:"last_name"`
	Email      string           `json:"email" db:"email"`
	Phone      *string          `json:"phone" db:"phone"`
	EventDate  *time.Time       `json:"event_date" db:"event_date"`
	Message    *string          `json:"message" db:"message"`
	Status     string           `json:"status" db:"status"`
	Items      []QuoteRequestItem `json:"items"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" db:"updated_at"`
}

// QuoteRequestItem is a snapshot of a cart line at submission time.
// Prices are copied so later catalog edits do not rewrite past requests.
type QuoteRequestItem struct {
	ID             uuid.UUID `json:"id" db:"id"`
	QuoteRequestID uuid.UUID `json:"quote_request_id" db:"quote_request_id"`
	ProductID      uuid.UUID `json:"product_id" db:"product_id"`
	ProductName    string    `json:"product_name" db:"product_name"`
	PriceTTC       float64   `json:"price_ttc" db:"price_ttc"`
	Quantity       int       `json:"quantity" db:"quantity"`
}

// ValidQuoteStatus reports whether s is a known lifecycle state.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusNew, QuoteStatusProcessing, QuoteStatusQuoted, QuoteStatusClosed:
		return true
	}
	return false
}
