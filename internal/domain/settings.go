package domain

import "time"

// SiteSettings is a singleton: one fixed-id row read by nearly every public
// page. The settings service keeps a cached copy and invalidates it on write.
type SiteSettings struct {
	SiteName        string    `db:"site_name" json:"site_name"`
	SiteDescription string    `db:"site_description" json:"site_description"`
	ContactEmail    string    `db:"contact_email" json:"contact_email"`
	ContactPhone    string    `db:"contact_phone" json:"contact_phone"`
	WhatsApp        string    `db:"whatsapp" json:"whatsapp"`
	Address         string    `db:"address" json:"address"`
	FacebookURL     string    `db:"facebook_url" json:"facebook_url"`
	InstagramURL    string    `db:"instagram_url" json:"instagram_url"`
	TwitterURL      string    `db:"twitter_url" json:"twitter_url"`
	YouTubeURL      string    `db:"youtube_url" json:"youtube_url"`
	AnalyticsID     string    `db:"analytics_id" json:"analytics_id"`
	LogoURL         string    `db:"logo_url" json:"logo_url"`
	FaviconURL      string    `db:"favicon_url" json:"favicon_url"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
