package models

import (
	"time"

	"github.com/google/uuid"
)

// The category hierarchy is strictly three levels deep:
// category -> subcategory -> sub-subcategory. Slugs are unique among
// siblings and order_index defines the display order at each level.

type Category struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	OrderIndex     int       `json:"order_index" db:"order_index"`
	Description    *string   `json:"description" db:"description"`
	SEOTitle       *string   `json:"seo_title" db:"seo_title"`
	SEODescription *string   `json:"seo_description" db:"seo_description"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type Subcategory struct {
	ID             uuid.UUID `json:"id" db:"id"`
	CategoryID     uuid.UUID `json:"category_id" db:"category_id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	OrderIndex     int       `json:"order_index" db:"order_index"`
	Description    *string   `json:"description" db:"description"`
	SEOTitle       *string   `json:"seo_title" db:"seo_title"`
	SEODescription *string   `json:"seo_description" db:"seo_description"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type SubSubcategory struct {
	ID             uuid.UUID `json:"id" db:"id"`
	SubcategoryID  uuid.UUID `json:"subcategory_id" db:"subcategory_id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	OrderIndex     int       `json:"order_index" db:"order_index"`
	Description    *string   `json:"description" db:"description"`
	SEOTitle       *string   `json:"seo_title" db:"seo_title"`
	SEODescription *string   `json:"seo_description" db:"seo_description"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
