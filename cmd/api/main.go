package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/atlastrips/atlas-cms-backend/internal/config"
	"github.com/atlastrips/atlas-cms-backend/internal/logging"
	"github.com/atlastrips/atlas-cms-backend/internal/media"
	miniorepo "github.com/atlastrips/atlas-cms-backend/internal/repository/minio"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/postgres"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	transport "github.com/atlastrips/atlas-cms-backend/internal/transport/http"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewTCPWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash writer disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db, "migrations"); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	minioClient, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect to minio: %v", err)
	}
	storage := miniorepo.NewStorage(minioClient)

	countries := postgres.NewCountryRepo(db)
	destinations := postgres.NewDestinationRepo(db)
	packages := postgres.NewPackageRepo(db)
	deals := postgres.NewDealRepo(db)
	services := postgres.NewServiceRepo(db)
	slides := postgres.NewHeroSlideRepo(db)
	testimonials := postgres.NewTestimonialRepo(db)
	settings := postgres.NewSettingsRepo(db)
	contacts := postgres.NewContactRepo(db)
	newsletter := postgres.NewNewsletterRepo(db)
	popups := postgres.NewPopupRepo(db)
	auditLog := postgres.NewAuditLogRepo(db)

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		log.Printf("invalid SESSION_TTL %q, using 24h", cfg.SessionTTL)
		sessionTTL = 24 * time.Hour
	}
	tokens := util.NewJWTManager(cfg.JWTSecret, sessionTTL)

	audit := service.NewAuditService(auditLog, cfg.AuditLogLimit)
	catalog := service.NewCatalogService(countries, destinations, packages, audit)
	content := service.NewContentService(deals, services, slides, testimonials, popups, audit)
	siteSettings := service.NewSettingsService(settings, audit)
	search := service.NewSearchService(destinations, packages, deals, services)
	engagement := service.NewEngagementService(contacts, newsletter, popups)
	chat := service.NewChatService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.ChatSystemPrompt)
	uploads := service.NewUploadService(storage, media.NewImageProcessor(cfg.UploadImageMaxBytes), cfg.MinIOBucketUploads, cfg.MinIOPublicURL)
	auth := service.NewAuthService(cfg.AdminUsername, cfg.AdminSecret, tokens)

	e := transport.NewRouter(cfg.AllowOrigins)
	guard := transport.RequireAdmin(tokens)

	transport.RegisterPages(e)
	transport.RegisterSwagger(e)
	transport.RegisterAuth(e, auth)
	transport.RegisterCountries(e, catalog, guard)
	transport.RegisterDestinations(e, catalog, guard)
	transport.RegisterPackages(e, catalog, guard)
	transport.RegisterDeals(e, content, guard)
	transport.RegisterServices(e, content, guard)
	transport.RegisterShowcase(e, catalog, content, guard)
	transport.RegisterSettings(e, siteSettings, guard)
	transport.RegisterSearch(e, search, guard)
	transport.RegisterEngagement(e, engagement, content, guard)
	transport.RegisterChat(e, chat)
	transport.RegisterUploads(e, uploads, guard)
	transport.RegisterAudit(e, audit, guard)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
