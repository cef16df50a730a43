package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is an agency offering (visa assistance, travel insurance, ...).
// Icon names an entry in the site's icon set.
type Service struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Slug             string     `db:"slug" json:"slug"`
	Name             string     `db:"name" json:"name"`
	Description      string     `db:"description" json:"description"`
	ShortDescription string     `db:"short_description" json:"short_description"`
	Icon             string     `db:"icon" json:"icon"`
	Features         StringList `db:"features" json:"features"`
	Price            *string    `db:"price" json:"price,omitempty"`
	Duration         *string    `db:"duration" json:"duration,omitempty"`
	Category         string     `db:"category" json:"category"`
	Image            *string    `db:"image" json:"image,omitempty"`
	Featured         bool       `db:"featured" json:"featured"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	Order            int        `db:"sort_order" json:"order"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}
