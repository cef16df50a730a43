package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

const (
	maxCountrySummaryLen   = 200
	maxShortDescriptionLen = 300
	entityTypeCountry      = "country"
	entityTypeDestination  = "destination"
	entityTypePackage      = "package"
)

// CatalogService owns the country, destination and package catalog: the
// hierarchical half of the content model. Countries anchor destinations
// through a hard reference; packages point at destinations by slug only.
type CatalogService struct {
	countries    ports.CountryRepository
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
	audit        *AuditService
}

func NewCatalogService(
	countries ports.CountryRepository,
	destinations ports.DestinationRepository,
	packages ports.PackageRepository,
	audit *AuditService,
) *CatalogService {
	return &CatalogService{
		countries:    countries,
		destinations: destinations,
		packages:     packages,
		audit:        audit,
	}
}

// --- countries ---

func (s *CatalogService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.countries.List(ctx)
}

func (s *CatalogService) ListActiveCountries(ctx context.Context) ([]domain.Country, error) {
	return s.countries.ListActive(ctx)
}

func (s *CatalogService) CountryOptions(ctx context.Context) ([]domain.CountryOption, error) {
	return s.countries.ListOptions(ctx)
}

func (s *CatalogService) GetCountry(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	country, err := s.countries.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return country, nil
}

func (s *CatalogService) GetCountryBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	country, err := s.countries.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return country, nil
}

func (s *CatalogService) CreateCountry(ctx context.Context, actor string, country *domain.Country) (*domain.Country, error) {
	if err := s.validateCountry(country); err != nil {
		return nil, err
	}
	stored, err := s.countries.Create(ctx, country)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypeCountry, stored.ID, stored.Name)
	return stored, nil
}

func (s *CatalogService) UpdateCountry(ctx context.Context, actor string, country *domain.Country) (*domain.Country, error) {
	if err := s.validateCountry(country); err != nil {
		return nil, err
	}
	stored, err := s.countries.Update(ctx, country)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrCountryNotFound
		case isUniqueViolation(err):
			return nil, ErrSlugConflict
		default:
			return nil, err
		}
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypeCountry, stored.ID, stored.Name)
	return stored, nil
}

// DeleteCountry refuses while destinations still reference the country; the
// admin has to move or delete them first.
func (s *CatalogService) DeleteCountry(ctx context.Context, actor string, id uuid.UUID) error {
	country, err := s.GetCountry(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.countries.CountDestinations(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d destination(s) reference %s", ErrCountryInUse, count, country.Name)
	}
	if err := s.countries.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrCountryNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypeCountry, id, country.Name)
	return nil
}

func (s *CatalogService) validateCountry(country *domain.Country) error {
	if country.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(country.Summary) > maxCountrySummaryLen {
		return fmt.Errorf("%w: summary exceeds %d characters", ErrValidation, maxCountrySummaryLen)
	}
	slug, err := resolveSlug(country.Slug, country.Name)
	if err != nil {
		return err
	}
	country.Slug = slug
	country.PopularDestinations = clampNonNegative(country.PopularDestinations)
	return nil
}

// --- destinations ---

func (s *CatalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *CatalogService) ListActiveDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.ListActive(ctx)
}

func (s *CatalogService) DestinationOptions(ctx context.Context) ([]domain.DestinationOption, error) {
	return s.destinations.ListOptions(ctx)
}

func (s *CatalogService) GetDestination(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	dest, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}

// GetDestinationBySlug resolves a public detail URL. The destination must
// belong to the named country; a matching slug under another country is a
// miss, not a redirect.
func (s *CatalogService) GetDestinationBySlug(ctx context.Context, countrySlug, destSlug string) (*domain.Destination, error) {
	country, err := s.GetCountryBySlug(ctx, countrySlug)
	if err != nil {
		return nil, err
	}
	dest, err := s.destinations.FindBySlug(ctx, destSlug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	if dest.CountryID != country.ID {
		return nil, ErrDestinationNotFound
	}
	return dest, nil
}

func (s *CatalogService) ListActiveDestinationsByCountry(ctx context.Context, countrySlug string) ([]domain.Destination, error) {
	country, err := s.GetCountryBySlug(ctx, countrySlug)
	if err != nil {
		return nil, err
	}
	return s.destinations.ListActiveByCountry(ctx, country.ID)
}

func (s *CatalogService) CreateDestination(ctx context.Context, actor string, dest *domain.Destination) (*domain.Destination, error) {
	if err := s.validateDestination(ctx, dest); err != nil {
		return nil, err
	}
	stored, err := s.destinations.Create(ctx, dest)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypeDestination, stored.ID, stored.Name)
	return stored, nil
}

func (s *CatalogService) UpdateDestination(ctx context.Context, actor string, dest *domain.Destination) (*domain.Destination, error) {
	if err := s.validateDestination(ctx, dest); err != nil {
		return nil, err
	}
	stored, err := s.destinations.Update(ctx, dest)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrDestinationNotFound
		case isUniqueViolation(err):
			return nil, ErrSlugConflict
		default:
			return nil, err
		}
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypeDestination, stored.ID, stored.Name)
	return stored, nil
}

func (s *CatalogService) DeleteDestination(ctx context.Context, actor string, id uuid.UUID) error {
	dest, err := s.GetDestination(ctx, id)
	if err != nil {
		return err
	}
	if err := s.destinations.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrDestinationNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypeDestination, id, dest.Name)
	return nil
}

func (s *CatalogService) validateDestination(ctx context.Context, dest *domain.Destination) error {
	if dest.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if dest.CountryID == uuid.Nil {
		return fmt.Errorf("%w: country_id is required", ErrValidation)
	}
	if _, err := s.countries.FindByID(ctx, dest.CountryID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: country_id does not name a stored country", ErrValidation)
		}
		return err
	}
	if dest.PriceFrom < 0 {
		return fmt.Errorf("%w: price_from cannot be negative", ErrValidation)
	}
	if dest.PriceTo != nil && *dest.PriceTo < 0 {
		return fmt.Errorf("%w: price_to cannot be negative", ErrValidation)
	}
	slug, err := resolveSlug(dest.Slug, dest.Name)
	if err != nil {
		return err
	}
	dest.Slug = slug
	dest.Images = dest.Images.Clean()
	dest.Tags = dest.Tags.Clean()
	dest.Highlights = dest.Highlights.Clean()
	return nil
}

// --- packages ---

func (s *CatalogService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.packages.List(ctx)
}

func (s *CatalogService) ListActivePackages(ctx context.Context) ([]domain.Package, error) {
	return s.packages.ListActive(ctx)
}

func (s *CatalogService) GetPackage(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *CatalogService) GetPackageBySlug(ctx context.Context, slug string) (*domain.Package, error) {
	pkg, err := s.packages.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *CatalogService) CreatePackage(ctx context.Context, actor string, pkg *domain.Package) (*domain.Package, error) {
	if err := s.validatePackage(pkg); err != nil {
		return nil, err
	}
	stored, err := s.packages.Create(ctx, pkg)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypePackage, stored.ID, stored.Name)
	return stored, nil
}

func (s *CatalogService) UpdatePackage(ctx context.Context, actor string, pkg *domain.Package) (*domain.Package, error) {
	if err := s.validatePackage(pkg); err != nil {
		return nil, err
	}
	stored, err := s.packages.Update(ctx, pkg)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrPackageNotFound
		case isUniqueViolation(err):
			return nil, ErrSlugConflict
		default:
			return nil, err
		}
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypePackage, stored.ID, stored.Name)
	return stored, nil
}

func (s *CatalogService) DeletePackage(ctx context.Context, actor string, id uuid.UUID) error {
	pkg, err := s.GetPackage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.packages.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrPackageNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypePackage, id, pkg.Name)
	return nil
}

// validatePackage does not resolve DestinationSlug against the destination
// store: the reference is soft and may name seed data on purpose.
func (s *CatalogService) validatePackage(pkg *domain.Package) error {
	if pkg.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if pkg.DestinationSlug == "" {
		return fmt.Errorf("%w: destination_slug is required", ErrValidation)
	}
	if !util.IsValidSlug(pkg.DestinationSlug) {
		return fmt.Errorf("%w: destination_slug is not a valid slug", ErrValidation)
	}
	if len(pkg.ShortDescription) > maxShortDescriptionLen {
		return fmt.Errorf("%w: short_description exceeds %d characters", ErrValidation, maxShortDescriptionLen)
	}
	pkg.Includes = pkg.Includes.Clean()
	pkg.Excludes = pkg.Excludes.Clean()
	pkg.Terms = pkg.Terms.Clean()
	if len(pkg.Includes) == 0 {
		return fmt.Errorf("%w: at least one inclusion is required", ErrValidation)
	}
	if len(pkg.Excludes) == 0 {
		return fmt.Errorf("%w: at least one exclusion is required", ErrValidation)
	}
	for _, day := range pkg.Itinerary {
		if day.Day <= 0 {
			return fmt.Errorf("%w: itinerary day numbers must be positive", ErrValidation)
		}
	}
	slug, err := resolveSlug(pkg.Slug, pkg.Name)
	if err != nil {
		return err
	}
	pkg.Slug = slug
	return nil
}

// resolveSlug derives a slug from the display name when the caller left it
// blank. An explicit slug is kept as sent, so renaming an entity never
// rewrites its URL.
func resolveSlug(provided, name string) (string, error) {
	slug := strings.TrimSpace(provided)
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return "", fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", ErrValidation)
	}
	return slug, nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
