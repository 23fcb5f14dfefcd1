package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Slug              string     `json:"slug" db:"slug"`
	Reference         string     `json:"reference" db:"reference"`
	PriceTTC          float64    `json:"price_ttc" db:"price_ttc"` // tax-included daily rental price
	CategoryID        *uuid.UUID `json:"category_id" db:"category_id"`
	SubcategoryID     *uuid.UUID `json:"subcategory_id" db:"subcategory_id"`
	SubSubcategoryID  *uuid.UUID `json:"subsubcategory_id" db:"subsubcategory_id"`
	Colors            []string   `json:"colors" db:"colors"`
	Images            []string   `json:"images" db:"images"`
	MainImageIndex    int        `json:"main_image_index" db:"main_image_index"`
	IsAvailable       bool       `json:"is_available" db:"is_available"`
	Description       *string    `json:"description" db:"description"`
	SEOTitle          *string    `json:"seo_title" db:"seo_title"`
	SEODescription    *string    `json:"seo_description" db:"seo_description"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// MainImage returns the image flagged as primary, or "" when the product
// carries no images. An out-of-range index falls back to the first image.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	if p.MainImageIndex < 0 || p.MainImageIndex >= len(p.Images) {
		return p.Images[0]
	}
	return p.Images[p.MainImageIndex]
}
