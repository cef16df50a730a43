package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

// SettingsService serves the site settings singleton. Nearly every public
// page reads it, so the service keeps the last stored copy in memory and
// only goes to the database on a cold cache or after a write.
type SettingsService struct {
	store ports.SettingsRepository
	audit *AuditService

	mu     sync.RWMutex
	cached *domain.SiteSettings
}

func NewSettingsService(store ports.SettingsRepository, audit *AuditService) *SettingsService {
	return &SettingsService{store: store, audit: audit}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		copied := *cached
		return &copied, nil
	}

	settings, err := s.store.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			// No row yet: serve zero-value settings until the first save.
			return &domain.SiteSettings{}, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.cached = settings
	s.mu.Unlock()

	copied := *settings
	return &copied, nil
}

// Replace stores the full settings document and swaps the cache to the
// stored row, never to the caller's input.
func (s *SettingsService) Replace(ctx context.Context, actor string, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}
	stored, err := s.store.Put(ctx, settings)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = stored
	s.mu.Unlock()

	s.audit.Record(ctx, actor, domain.AuditActionUpdate, "site_settings", uuid.Nil, stored.SiteName)

	copied := *stored
	return &copied, nil
}

func validateSettings(settings *domain.SiteSettings) error {
	if settings.SiteName == "" {
		return fmt.Errorf("%w: site_name is required", ErrValidation)
	}
	if settings.ContactEmail != "" && !util.IsValidEmail(settings.ContactEmail) {
		return fmt.Errorf("%w: contact_email is not a valid address", ErrValidation)
	}
	for field, value := range map[string]string{
		"facebook_url":  settings.FacebookURL,
		"instagram_url": settings.InstagramURL,
		"twitter_url":   settings.TwitterURL,
		"youtube_url":   settings.YouTubeURL,
	} {
		if value != "" && !util.IsValidURL(value) {
			return fmt.Errorf("%w: %s is not a valid URL", ErrValidation, field)
		}
	}
	return nil
}
