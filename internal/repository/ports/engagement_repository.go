package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type ContactRepository interface {
	Insert(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error)
	List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error)
}

type NewsletterRepository interface {
	// Subscribe inserts the address and reports whether a new row was
	// created; an already subscribed address returns false with no error.
	Subscribe(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}

type PopupRepository interface {
	Create(ctx context.Context, popup *domain.DealsPopup) (*domain.DealsPopup, error)
	Update(ctx context.Context, popup *domain.DealsPopup) (*domain.DealsPopup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.DealsPopup, error)
	List(ctx context.Context) ([]domain.DealsPopup, error)
	// FindActive returns the first active popup by sort order, or nil.
	FindActive(ctx context.Context) (*domain.DealsPopup, error)
}
