package service

import (
	"context"
	"strings"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const (
	searchMinQueryLen = 2
	searchMaxResults  = 20
)

// SearchService backs the admin command palette: one case-insensitive
// substring query fanned out across destinations, packages, deals and
// agency services, merged into a bounded flat list.
type SearchService struct {
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
	deals        ports.DealRepository
	services     ports.ServiceRepository
}

func NewSearchService(
	destinations ports.DestinationRepository,
	packages ports.PackageRepository,
	deals ports.DealRepository,
	services ports.ServiceRepository,
) *SearchService {
	return &SearchService{
		destinations: destinations,
		packages:     packages,
		deals:        deals,
		services:     services,
	}
}

// Search returns at most 20 results in fixed section order: destinations,
// then packages, then deals, then services. Queries shorter than two
// characters are rejected rather than matched against everything.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < searchMinQueryLen {
		return nil, ErrSearchQueryTooShort
	}

	results := make([]domain.SearchResult, 0, searchMaxResults)

	destinations, err := s.destinations.SearchByName(ctx, q, searchMaxResults)
	if err != nil {
		return nil, err
	}
	for _, d := range destinations {
		if len(results) == searchMaxResults {
			return results, nil
		}
		results = append(results, domain.SearchResult{
			ID:       d.ID.String(),
			Type:     "destination",
			Title:    d.Name,
			Subtitle: d.CountryName,
			Href:     "/admin/destinations/" + d.ID.String(),
		})
	}

	if len(results) == searchMaxResults {
		return results, nil
	}
	packages, err := s.packages.SearchByName(ctx, q, searchMaxResults-len(results))
	if err != nil {
		return nil, err
	}
	for _, p := range packages {
		if len(results) == searchMaxResults {
			return results, nil
		}
		results = append(results, domain.SearchResult{
			ID:       p.ID.String(),
			Type:     "package",
			Title:    p.Name,
			Subtitle: p.Country,
			Href:     "/admin/packages/" + p.ID.String(),
		})
	}

	if len(results) == searchMaxResults {
		return results, nil
	}
	deals, err := s.deals.SearchByTitle(ctx, q, searchMaxResults-len(results))
	if err != nil {
		return nil, err
	}
	for _, d := range deals {
		if len(results) == searchMaxResults {
			return results, nil
		}
		results = append(results, domain.SearchResult{
			ID:       d.ID.String(),
			Type:     "deal",
			Title:    d.Title,
			Subtitle: d.Category,
			Href:     "/admin/deals/" + d.ID.String(),
		})
	}

	if len(results) == searchMaxResults {
		return results, nil
	}
	services, err := s.services.SearchByName(ctx, q, searchMaxResults-len(results))
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		if len(results) == searchMaxResults {
			return results, nil
		}
		results = append(results, domain.SearchResult{
			ID:       svc.ID.String(),
			Type:     "service",
			Title:    svc.Name,
			Subtitle: svc.Category,
			Href:     "/admin/services/" + svc.ID.String(),
		})
	}

	return results, nil
}
