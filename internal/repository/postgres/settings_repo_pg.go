package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const settingsColumns = `site_name, site_description, contact_email, contact_phone, whatsapp,
	       address, facebook_url, instagram_url, twitter_url, youtube_url,
	       analytics_id, logo_url, favicon_url, updated_at`

// SettingsRepository manages the single site_settings row. The table carries
// a check constraint pinning id to 1, so the upsert below can never grow a
// second row.
type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepo(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	const query = `SELECT ` + settingsColumns + ` FROM site_settings WHERE id = 1`
	var settings domain.SiteSettings
	if err := r.db.GetContext(ctx, &settings, query); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Put(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	const query = `
		INSERT INTO site_settings (
			id, site_name, site_description, contact_email, contact_phone, whatsapp,
			address, facebook_url, instagram_url, twitter_url, youtube_url,
			analytics_id, logo_url, favicon_url
		) VALUES (
			1, :site_name, :site_description, :contact_email, :contact_phone, :whatsapp,
			:address, :facebook_url, :instagram_url, :twitter_url, :youtube_url,
			:analytics_id, :logo_url, :favicon_url
		)
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			site_description = EXCLUDED.site_description,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			whatsapp = EXCLUDED.whatsapp,
			address = EXCLUDED.address,
			facebook_url = EXCLUDED.facebook_url,
			instagram_url = EXCLUDED.instagram_url,
			twitter_url = EXCLUDED.twitter_url,
			youtube_url = EXCLUDED.youtube_url,
			analytics_id = EXCLUDED.analytics_id,
			logo_url = EXCLUDED.logo_url,
			favicon_url = EXCLUDED.favicon_url,
			updated_at = NOW()
		RETURNING ` + settingsColumns

	rows, err := r.db.NamedQueryContext(ctx, query, settings)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.SiteSettings
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)
