package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
	SearchByName(ctx context.Context, query string, limit int) ([]domain.Service, error)
}
