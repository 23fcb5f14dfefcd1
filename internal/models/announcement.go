package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a site-wide banner shown between StartsAt and EndsAt.
// The expiry sweep deactivates rows whose window has passed.
type Announcement struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Message   string     `json:"message" db:"message"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	StartsAt  *time.Time `json:"starts_at" db:"starts_at"`
	EndsAt    *time.Time `json:"ends_at" db:"ends_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
