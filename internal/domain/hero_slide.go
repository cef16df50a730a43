package domain

import (
	"time"

	"github.com/google/uuid"
)

type HeroSlide struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Eyebrow    *string   `db:"eyebrow" json:"eyebrow,omitempty"`
	Title      string    `db:"title" json:"title"`
	Highlight  *string   `db:"highlight" json:"highlight,omitempty"`
	Subtitle   string    `db:"subtitle" json:"subtitle"`
	ButtonText string    `db:"button_text" json:"button_text"`
	ButtonLink string    `db:"button_link" json:"button_link"`
	Image      string    `db:"image" json:"image"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	Order      int       `db:"sort_order" json:"order"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
