package domain

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Location  *string   `db:"location" json:"location,omitempty"`
	Trip      *string   `db:"trip" json:"trip,omitempty"`
	Content   string    `db:"content" json:"content"`
	Rating    int       `db:"rating" json:"rating"`
	Image     *string   `db:"image" json:"image,omitempty"`
	Source    string    `db:"source" json:"source"`
	Featured  bool      `db:"featured" json:"featured"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
