package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type TestimonialRepository interface {
	Create(ctx context.Context, tst *domain.Testimonial) (*domain.Testimonial, error)
	Update(ctx context.Context, tst *domain.Testimonial) (*domain.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error)
	List(ctx context.Context) ([]domain.Testimonial, error)
	ListActive(ctx context.Context) ([]domain.Testimonial, error)
}
