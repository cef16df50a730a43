package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type CountryRepository interface {
	Create(ctx context.Context, country *domain.Country) (*domain.Country, error)
	Update(ctx context.Context, country *domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Country, error)
	List(ctx context.Context) ([]domain.Country, error)
	ListActive(ctx context.Context) ([]domain.Country, error)
	ListOptions(ctx context.Context) ([]domain.CountryOption, error)
	CountDestinations(ctx context.Context, countryID uuid.UUID) (int, error)
}
