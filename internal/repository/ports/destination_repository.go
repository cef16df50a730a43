package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type DestinationRepository interface {
	Create(ctx context.Context, dest *domain.Destination) (*domain.Destination, error)
	Update(ctx context.Context, dest *domain.Destination) (*domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	ListActive(ctx context.Context) ([]domain.Destination, error)
	ListActiveByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.Destination, error)
	ListOptions(ctx context.Context) ([]domain.DestinationOption, error)
	SearchByName(ctx context.Context, query string, limit int) ([]domain.DestinationOption, error)
}
