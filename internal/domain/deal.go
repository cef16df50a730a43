package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a time-limited promotion. Prices are display strings so the portal
// can phrase them freely; only the discount percentage is numeric.
type Deal struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Slug             string     `db:"slug" json:"slug"`
	Title            string     `db:"title" json:"title"`
	Description      string     `db:"description" json:"description"`
	ShortDescription string     `db:"short_description" json:"short_description"`
	OriginalPrice    string     `db:"original_price" json:"original_price"`
	DiscountedPrice  string     `db:"discounted_price" json:"discounted_price"`
	Discount         int        `db:"discount" json:"discount"`
	ValidUntil       time.Time  `db:"valid_until" json:"valid_until"`
	Destinations     StringList `db:"destinations" json:"destinations"`
	Image            string     `db:"image" json:"image"`
	Category         string     `db:"category" json:"category"`
	Terms            StringList `db:"terms" json:"terms"`
	Highlights       StringList `db:"highlights" json:"highlights"`
	Featured         bool       `db:"featured" json:"featured"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	Order            int        `db:"sort_order" json:"order"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}
