package domain

import (
	"time"

	"github.com/google/uuid"
)

type Destination struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CountryID   uuid.UUID  `db:"country_id" json:"country_id"`
	Slug        string     `db:"slug" json:"slug"`
	Name        string     `db:"name" json:"name"`
	HeroImage   string     `db:"hero_image" json:"hero_image"`
	Images      StringList `db:"images" json:"images"`
	Summary     string     `db:"summary" json:"summary"`
	Description string     `db:"description" json:"description"`
	PriceFrom   float64    `db:"price_from" json:"price_from"`
	PriceTo     *float64   `db:"price_to" json:"price_to,omitempty"`
	BestTime    string     `db:"best_time" json:"best_time"`
	Duration    string     `db:"duration" json:"duration"`
	Tags        StringList `db:"tags" json:"tags"`
	Highlights  StringList `db:"highlights" json:"highlights"`
	Latitude    *float64   `db:"latitude" json:"latitude,omitempty"`
	Longitude   *float64   `db:"longitude" json:"longitude,omitempty"`
	Featured    bool       `db:"featured" json:"featured"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	Order       int        `db:"sort_order" json:"order"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// DestinationOption is the dependency fetch the package form needs: each
// destination annotated with its owning country's display name, which the
// form copies into the package's denormalized country field on selection.
type DestinationOption struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Slug        string    `db:"slug" json:"slug"`
	Name        string    `db:"name" json:"name"`
	CountryName string    `db:"country_name" json:"country"`
	CountrySlug string    `db:"country_slug" json:"country_slug"`
}
