package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type DealRepository interface {
	Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	Update(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Deal, error)
	List(ctx context.Context) ([]domain.Deal, error)
	ListActive(ctx context.Context) ([]domain.Deal, error)
	SearchByTitle(ctx context.Context, query string, limit int) ([]domain.Deal, error)
}
