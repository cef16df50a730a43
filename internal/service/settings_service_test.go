package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

func TestSettingsGetBeforeFirstSave(t *testing.T) {
	repo := &memSettingsRepo{}
	audit, _ := newTestAudit()
	svc := NewSettingsService(repo, audit)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.SiteName != "" {
		t.Fatalf("expected zero-value settings, got %+v", settings)
	}
}

func TestSettingsCachedAfterFirstRead(t *testing.T) {
	repo := &memSettingsRepo{row: &domain.SiteSettings{SiteName: "Atlas Trips"}}
	audit, _ := newTestAudit()
	svc := NewSettingsService(repo, audit)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Get(ctx); err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
	}
	if repo.gets != 1 {
		t.Fatalf("store reads = %d, want 1", repo.gets)
	}
}

func TestSettingsReplaceRefreshesCache(t *testing.T) {
	repo := &memSettingsRepo{row: &domain.SiteSettings{SiteName: "Atlas Trips"}}
	audit, auditRepo := newTestAudit()
	svc := NewSettingsService(repo, audit)
	ctx := context.Background()

	if _, err := svc.Get(ctx); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if _, err := svc.Replace(ctx, "admin", &domain.SiteSettings{SiteName: "Atlas Trips Reborn"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	settings, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if settings.SiteName != "Atlas Trips Reborn" {
		t.Fatalf("site name = %q, want the replaced value", settings.SiteName)
	}
	if repo.gets != 1 {
		t.Fatalf("store reads = %d, replace should have refreshed the cache itself", repo.gets)
	}
	if len(auditRepo.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(auditRepo.entries))
	}
}

func TestSettingsValidation(t *testing.T) {
	repo := &memSettingsRepo{}
	audit, _ := newTestAudit()
	svc := NewSettingsService(repo, audit)

	cases := []struct {
		name     string
		settings domain.SiteSettings
	}{
		{"missing site name", domain.SiteSettings{}},
		{"bad contact email", domain.SiteSettings{SiteName: "Atlas", ContactEmail: "not-an-address"}},
		{"bad facebook url", domain.SiteSettings{SiteName: "Atlas", FacebookURL: "ftp://weird"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := tc.settings
			_, err := svc.Replace(context.Background(), "admin", &settings)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}
