package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a trip enquiry from the public contact form. Travel
// dates, party size and budget arrive as the display strings the form
// collected; persistence is the only side effect.
type ContactSubmission struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Destination *string   `db:"destination" json:"destination,omitempty"`
	TravelDates *string   `db:"travel_dates" json:"travel_dates,omitempty"`
	PartySize   *string   `db:"party_size" json:"party_size,omitempty"`
	Budget      *string   `db:"budget" json:"budget,omitempty"`
	Message     string    `db:"message" json:"message"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type NewsletterSubscriber struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}

// DealsPopup is the promotional popup shown on the public site. The widget
// suppresses itself for an hour after being seen; the server makes that call
// from the client-reported last-seen timestamp.
type DealsPopup struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image"`
	DealSlug    *string   `db:"deal_slug" json:"deal_slug,omitempty"`
	ButtonText  string    `db:"button_text" json:"button_text"`
	ButtonLink  string    `db:"button_link" json:"button_link"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	Order       int       `db:"sort_order" json:"order"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
