package domain

import (
	"time"

	"github.com/google/uuid"
)

// Country is a top-level catalog region. Destinations hang off it through a
// hard foreign key; a country cannot be removed while destinations exist.
type Country struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Slug                string    `db:"slug" json:"slug"`
	HeroImage           string    `db:"hero_image" json:"hero_image"`
	Summary             string    `db:"summary" json:"summary"`
	Description         string    `db:"description" json:"description"`
	Region              string    `db:"region" json:"region"`
	PopularDestinations int       `db:"popular_destinations" json:"popular_destinations"`
	Featured            bool      `db:"featured" json:"featured"`
	IsActive            bool      `db:"is_active" json:"is_active"`
	Order               int       `db:"sort_order" json:"order"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// CountryOption is the dependency fetch the destination form needs to render
// its country selector.
type CountryOption struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
	Slug string    `db:"slug" json:"slug"`
}
