package models

import (
	"time"

	"github.com/google/uuid"
)

// Page is an admin-managed CMS page (about, delivery, legal, ...).
type Page struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Slug           string    `json:"slug" db:"slug"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	SEOTitle       *string   `json:"seo_title" db:"seo_title"`
	SEODescription *string   `json:"seo_description" db:"seo_description"`
	IsPublished    bool      `json:"is_published" db:"is_published"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
