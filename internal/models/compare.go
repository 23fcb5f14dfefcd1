package models

import "github.com/google/uuid"

// MaxComparisonProducts bounds the side-by-side comparison selection.
const MaxComparisonProducts = 3

// ComparisonItem is the display snapshot stored for a compared product.
type ComparisonItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	PriceTTC  float64   `json:"price_ttc"`
	Image     string    `json:"image"`
}

// ComparisonSet is an ordered, deduplicated selection of at most
// MaxComparisonProducts products, persisted per session.
type ComparisonSet struct {
	SessionID string           `json:"session_id"`
	Items     []ComparisonItem `json:"items"`
}

func (s *ComparisonSet) Contains(productID uuid.UUID) bool {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
