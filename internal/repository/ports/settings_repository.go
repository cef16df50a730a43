package ports

import (
	"context"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

// SettingsRepository reads and replaces the single site settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Put(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
}
