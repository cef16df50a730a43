package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

// The fakes below back the service tests with map-based stores that mimic
// the database contract: sql.ErrNoRows for misses and a 23505 PgError for
// slug collisions.

var errDuplicate = &pgconn.PgError{Code: "23505"}

type memAuditRepo struct {
	entries []domain.AuditLogEntry
	err     error
}

func (m *memAuditRepo) Insert(_ context.Context, entry *domain.AuditLogEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memAuditRepo) List(_ context.Context, limit int) ([]domain.AuditLogEntry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}

func newTestAudit() (*AuditService, *memAuditRepo) {
	repo := &memAuditRepo{}
	return NewAuditService(repo, 0), repo
}

type memCountryRepo struct {
	rows      map[uuid.UUID]domain.Country
	destCount map[uuid.UUID]int
}

func newMemCountryRepo() *memCountryRepo {
	return &memCountryRepo{
		rows:      make(map[uuid.UUID]domain.Country),
		destCount: make(map[uuid.UUID]int),
	}
}

func (m *memCountryRepo) slugTaken(slug string, exclude uuid.UUID) bool {
	for id, row := range m.rows {
		if row.Slug == slug && id != exclude {
			return true
		}
	}
	return false
}

func (m *memCountryRepo) Create(_ context.Context, country *domain.Country) (*domain.Country, error) {
	if m.slugTaken(country.Slug, uuid.Nil) {
		return nil, errDuplicate
	}
	stored := *country
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memCountryRepo) Update(_ context.Context, country *domain.Country) (*domain.Country, error) {
	if _, ok := m.rows[country.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	if m.slugTaken(country.Slug, country.ID) {
		return nil, errDuplicate
	}
	stored := *country
	stored.UpdatedAt = time.Now()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memCountryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memCountryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Country, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memCountryRepo) FindBySlug(_ context.Context, slug string) (*domain.Country, error) {
	for _, row := range m.rows {
		if row.Slug == slug {
			copied := row
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memCountryRepo) List(_ context.Context) ([]domain.Country, error) {
	out := make([]domain.Country, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memCountryRepo) ListActive(ctx context.Context) ([]domain.Country, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memCountryRepo) ListOptions(ctx context.Context) ([]domain.CountryOption, error) {
	all, _ := m.List(ctx)
	out := make([]domain.CountryOption, 0, len(all))
	for _, row := range all {
		out = append(out, domain.CountryOption{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}
	return out, nil
}

func (m *memCountryRepo) CountDestinations(_ context.Context, countryID uuid.UUID) (int, error) {
	return m.destCount[countryID], nil
}

type memDestinationRepo struct {
	rows map[uuid.UUID]domain.Destination
}

func newMemDestinationRepo() *memDestinationRepo {
	return &memDestinationRepo{rows: make(map[uuid.UUID]domain.Destination)}
}

func (m *memDestinationRepo) slugTaken(slug string, exclude uuid.UUID) bool {
	for id, row := range m.rows {
		if row.Slug == slug && id != exclude {
			return true
		}
	}
	return false
}

func (m *memDestinationRepo) Create(_ context.Context, dest *domain.Destination) (*domain.Destination, error) {
	if m.slugTaken(dest.Slug, uuid.Nil) {
		return nil, errDuplicate
	}
	stored := *dest
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memDestinationRepo) Update(_ context.Context, dest *domain.Destination) (*domain.Destination, error) {
	if _, ok := m.rows[dest.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	if m.slugTaken(dest.Slug, dest.ID) {
		return nil, errDuplicate
	}
	stored := *dest
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memDestinationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memDestinationRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Destination, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memDestinationRepo) FindBySlug(_ context.Context, slug string) (*domain.Destination, error) {
	for _, row := range m.rows {
		if row.Slug == slug {
			copied := row
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memDestinationRepo) List(_ context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memDestinationRepo) ListActive(ctx context.Context) ([]domain.Destination, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memDestinationRepo) ListActiveByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.Destination, error) {
	active, _ := m.ListActive(ctx)
	out := active[:0:0]
	for _, row := range active {
		if row.CountryID == countryID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memDestinationRepo) ListOptions(ctx context.Context) ([]domain.DestinationOption, error) {
	all, _ := m.List(ctx)
	out := make([]domain.DestinationOption, 0, len(all))
	for _, row := range all {
		out = append(out, domain.DestinationOption{ID: row.ID, Slug: row.Slug, Name: row.Name})
	}
	return out, nil
}

func (m *memDestinationRepo) SearchByName(ctx context.Context, query string, limit int) ([]domain.DestinationOption, error) {
	all, _ := m.List(ctx)
	out := make([]domain.DestinationOption, 0)
	for _, row := range all {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(row.Name), strings.ToLower(query)) {
			out = append(out, domain.DestinationOption{ID: row.ID, Slug: row.Slug, Name: row.Name})
		}
	}
	return out, nil
}

type memPackageRepo struct {
	rows map[uuid.UUID]domain.Package
}

func newMemPackageRepo() *memPackageRepo {
	return &memPackageRepo{rows: make(map[uuid.UUID]domain.Package)}
}

func (m *memPackageRepo) slugTaken(slug string, exclude uuid.UUID) bool {
	for id, row := range m.rows {
		if row.Slug == slug && id != exclude {
			return true
		}
	}
	return false
}

func (m *memPackageRepo) Create(_ context.Context, pkg *domain.Package) (*domain.Package, error) {
	if m.slugTaken(pkg.Slug, uuid.Nil) {
		return nil, errDuplicate
	}
	stored := *pkg
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memPackageRepo) Update(_ context.Context, pkg *domain.Package) (*domain.Package, error) {
	if _, ok := m.rows[pkg.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	if m.slugTaken(pkg.Slug, pkg.ID) {
		return nil, errDuplicate
	}
	stored := *pkg
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memPackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memPackageRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Package, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memPackageRepo) FindBySlug(_ context.Context, slug string) (*domain.Package, error) {
	for _, row := range m.rows {
		if row.Slug == slug {
			copied := row
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memPackageRepo) List(_ context.Context) ([]domain.Package, error) {
	out := make([]domain.Package, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memPackageRepo) ListActive(ctx context.Context) ([]domain.Package, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memPackageRepo) SearchByName(ctx context.Context, query string, limit int) ([]domain.Package, error) {
	all, _ := m.List(ctx)
	out := make([]domain.Package, 0)
	for _, row := range all {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(row.Name), strings.ToLower(query)) {
			out = append(out, row)
		}
	}
	return out, nil
}

type memDealRepo struct {
	rows map[uuid.UUID]domain.Deal
}

func newMemDealRepo() *memDealRepo {
	return &memDealRepo{rows: make(map[uuid.UUID]domain.Deal)}
}

func (m *memDealRepo) slugTaken(slug string, exclude uuid.UUID) bool {
	for id, row := range m.rows {
		if row.Slug == slug && id != exclude {
			return true
		}
	}
	return false
}

func (m *memDealRepo) Create(_ context.Context, deal *domain.Deal) (*domain.Deal, error) {
	if m.slugTaken(deal.Slug, uuid.Nil) {
		return nil, errDuplicate
	}
	stored := *deal
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memDealRepo) Update(_ context.Context, deal *domain.Deal) (*domain.Deal, error) {
	if _, ok := m.rows[deal.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	if m.slugTaken(deal.Slug, deal.ID) {
		return nil, errDuplicate
	}
	stored := *deal
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memDealRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memDealRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Deal, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memDealRepo) FindBySlug(_ context.Context, slug string) (*domain.Deal, error) {
	for _, row := range m.rows {
		if row.Slug == slug {
			copied := row
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memDealRepo) List(_ context.Context) ([]domain.Deal, error) {
	out := make([]domain.Deal, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (m *memDealRepo) ListActive(ctx context.Context) ([]domain.Deal, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memDealRepo) SearchByTitle(ctx context.Context, query string, limit int) ([]domain.Deal, error) {
	all, _ := m.List(ctx)
	out := make([]domain.Deal, 0)
	for _, row := range all {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(row.Title), strings.ToLower(query)) {
			out = append(out, row)
		}
	}
	return out, nil
}

type memServiceRepo struct {
	rows map[uuid.UUID]domain.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{rows: make(map[uuid.UUID]domain.Service)}
}

func (m *memServiceRepo) slugTaken(slug string, exclude uuid.UUID) bool {
	for id, row := range m.rows {
		if row.Slug == slug && id != exclude {
			return true
		}
	}
	return false
}

func (m *memServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if m.slugTaken(svc.Slug, uuid.Nil) {
		return nil, errDuplicate
	}
	stored := *svc
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memServiceRepo) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if _, ok := m.rows[svc.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	if m.slugTaken(svc.Slug, svc.ID) {
		return nil, errDuplicate
	}
	stored := *svc
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memServiceRepo) FindBySlug(_ context.Context, slug string) (*domain.Service, error) {
	for _, row := range m.rows {
		if row.Slug == slug {
			copied := row
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memServiceRepo) List(_ context.Context) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memServiceRepo) ListActive(ctx context.Context) ([]domain.Service, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memServiceRepo) SearchByName(ctx context.Context, query string, limit int) ([]domain.Service, error) {
	all, _ := m.List(ctx)
	out := make([]domain.Service, 0)
	for _, row := range all {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(row.Name), strings.ToLower(query)) {
			out = append(out, row)
		}
	}
	return out, nil
}

type memSlideRepo struct {
	rows map[uuid.UUID]domain.HeroSlide
}

func newMemSlideRepo() *memSlideRepo {
	return &memSlideRepo{rows: make(map[uuid.UUID]domain.HeroSlide)}
}

func (m *memSlideRepo) Create(_ context.Context, slide *domain.HeroSlide) (*domain.HeroSlide, error) {
	stored := *slide
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memSlideRepo) Update(_ context.Context, slide *domain.HeroSlide) (*domain.HeroSlide, error) {
	if _, ok := m.rows[slide.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	stored := *slide
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memSlideRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memSlideRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.HeroSlide, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memSlideRepo) List(_ context.Context) ([]domain.HeroSlide, error) {
	out := make([]domain.HeroSlide, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (m *memSlideRepo) ListActive(ctx context.Context) ([]domain.HeroSlide, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

type memTestimonialRepo struct {
	rows map[uuid.UUID]domain.Testimonial
}

func newMemTestimonialRepo() *memTestimonialRepo {
	return &memTestimonialRepo{rows: make(map[uuid.UUID]domain.Testimonial)}
}

func (m *memTestimonialRepo) Create(_ context.Context, tst *domain.Testimonial) (*domain.Testimonial, error) {
	stored := *tst
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memTestimonialRepo) Update(_ context.Context, tst *domain.Testimonial) (*domain.Testimonial, error) {
	if _, ok := m.rows[tst.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	stored := *tst
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memTestimonialRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memTestimonialRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memTestimonialRepo) List(_ context.Context) ([]domain.Testimonial, error) {
	out := make([]domain.Testimonial, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memTestimonialRepo) ListActive(ctx context.Context) ([]domain.Testimonial, error) {
	all, _ := m.List(ctx)
	out := all[:0:0]
	for _, row := range all {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

type memPopupRepo struct {
	rows map[uuid.UUID]domain.DealsPopup
}

func newMemPopupRepo() *memPopupRepo {
	return &memPopupRepo{rows: make(map[uuid.UUID]domain.DealsPopup)}
}

func (m *memPopupRepo) Create(_ context.Context, popup *domain.DealsPopup) (*domain.DealsPopup, error) {
	stored := *popup
	stored.ID = uuid.New()
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memPopupRepo) Update(_ context.Context, popup *domain.DealsPopup) (*domain.DealsPopup, error) {
	if _, ok := m.rows[popup.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	stored := *popup
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memPopupRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memPopupRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.DealsPopup, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memPopupRepo) List(_ context.Context) ([]domain.DealsPopup, error) {
	out := make([]domain.DealsPopup, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (m *memPopupRepo) FindActive(ctx context.Context) (*domain.DealsPopup, error) {
	all, _ := m.List(ctx)
	for _, row := range all {
		if row.IsActive {
			copied := row
			return &copied, nil
		}
	}
	return nil, nil
}

type memSettingsRepo struct {
	row  *domain.SiteSettings
	gets int
}

func (m *memSettingsRepo) Get(_ context.Context) (*domain.SiteSettings, error) {
	m.gets++
	if m.row == nil {
		return nil, sql.ErrNoRows
	}
	copied := *m.row
	return &copied, nil
}

func (m *memSettingsRepo) Put(_ context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	stored := *settings
	stored.UpdatedAt = time.Now()
	m.row = &stored
	copied := stored
	return &copied, nil
}

type memContactRepo struct {
	rows []domain.ContactSubmission
}

func (m *memContactRepo) Insert(_ context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	stored := *submission
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	m.rows = append(m.rows, stored)
	return &stored, nil
}

func (m *memContactRepo) List(_ context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	if offset >= len(m.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return m.rows[offset:end], nil
}

type memNewsletterRepo struct {
	emails map[string]domain.NewsletterSubscriber
}

func newMemNewsletterRepo() *memNewsletterRepo {
	return &memNewsletterRepo{emails: make(map[string]domain.NewsletterSubscriber)}
}

func (m *memNewsletterRepo) Subscribe(_ context.Context, email string) (bool, error) {
	if _, ok := m.emails[email]; ok {
		return false, nil
	}
	m.emails[email] = domain.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        email,
		SubscribedAt: time.Now(),
	}
	return true, nil
}

func (m *memNewsletterRepo) List(_ context.Context) ([]domain.NewsletterSubscriber, error) {
	out := make([]domain.NewsletterSubscriber, 0, len(m.emails))
	for _, row := range m.emails {
		out = append(out, row)
	}
	return out, nil
}
