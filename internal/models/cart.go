package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single quote line. It is keyed by product ID: adding the
// same product again increments the quantity instead of appending a line.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	PriceTTC  float64   `json:"price_ttc"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
}

// Cart holds the ordered line items of one browser session.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartSummary carries both counts the storefront displays. The cart badge
// shows LineCount (distinct lines); TotalQuantity is the summed quantity
// used on the cart page itself.
type CartSummary struct {
	LineCount     int     `json:"line_count"`
	TotalQuantity int     `json:"total_quantity"`
	TotalTTC      float64 `json:"total_ttc"`
}
