package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Package, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	ListActive(ctx context.Context) ([]domain.Package, error)
	SearchByName(ctx context.Context, query string, limit int) ([]domain.Package, error)
}
