package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type HeroSlideRepository interface {
	Create(ctx context.Context, slide *domain.HeroSlide) (*domain.HeroSlide, error)
	Update(ctx context.Context, slide *domain.HeroSlide) (*domain.HeroSlide, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.HeroSlide, error)
	List(ctx context.Context) ([]domain.HeroSlide, error)
	ListActive(ctx context.Context) ([]domain.HeroSlide, error)
}
