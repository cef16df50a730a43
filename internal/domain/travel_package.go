package domain

import (
	"time"

	"github.com/google/uuid"
)

// Package is a sellable tour. DestinationSlug is a soft reference: it usually
// points at a stored destination but may name seed data that was never
// migrated, and it can go stale if the destination is re-slugged or deleted.
// Country is a display snapshot copied from the chosen destination at
// selection time and never re-synced afterwards.
type Package struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Slug             string     `db:"slug" json:"slug"`
	Name             string     `db:"name" json:"name"`
	DestinationSlug  string     `db:"destination_slug" json:"destination_slug"`
	Country          string     `db:"country" json:"country"`
	Description      string     `db:"description" json:"description"`
	ShortDescription string     `db:"short_description" json:"short_description"`
	Duration         string     `db:"duration" json:"duration"`
	Price            string     `db:"price" json:"price"`
	Includes         StringList `db:"includes" json:"includes"`
	Excludes         StringList `db:"excludes" json:"excludes"`
	Terms            StringList `db:"terms" json:"terms"`
	Itinerary        Itinerary  `db:"itinerary" json:"itinerary"`
	Category         string     `db:"category" json:"category"`
	Featured         bool       `db:"featured" json:"featured"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	Order            int        `db:"sort_order" json:"order"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}
