package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

const (
	entityTypeDeal        = "deal"
	entityTypeService     = "service"
	entityTypeHeroSlide   = "hero_slide"
	entityTypeTestimonial = "testimonial"
	entityTypePopup       = "deals_popup"
)

// ContentService owns the flat content types: deals, agency services, hero
// slides, testimonials and the deals popup. None of them reference each
// other through the store, so they share one service.
type ContentService struct {
	deals        ports.DealRepository
	services     ports.ServiceRepository
	slides       ports.HeroSlideRepository
	testimonials ports.TestimonialRepository
	popups       ports.PopupRepository
	audit        *AuditService
}

func NewContentService(
	deals ports.DealRepository,
	services ports.ServiceRepository,
	slides ports.HeroSlideRepository,
	testimonials ports.TestimonialRepository,
	popups ports.PopupRepository,
	audit *AuditService,
) *ContentService {
	return &ContentService{
		deals:        deals,
		services:     services,
		slides:       slides,
		testimonials: testimonials,
		popups:       popups,
		audit:        audit,
	}
}

// --- deals ---

func (s *ContentService) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	return s.deals.List(ctx)
}

func (s *ContentService) ListActiveDeals(ctx context.Context) ([]domain.Deal, error) {
	return s.deals.ListActive(ctx)
}

func (s *ContentService) GetDeal(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	deal, err := s.deals.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return deal, nil
}

func (s *ContentService) GetDealBySlug(ctx context.Context, slug string) (*domain.Deal, error) {
	deal, err := s.deals.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return deal, nil
}

func (s *ContentService) CreateDeal(ctx context.Context, actor string, deal *domain.Deal) (*domain.Deal, error) {
	if err := validateDeal(deal); err != nil {
		return nil, err
	}
	stored, err := s.deals.Create(ctx, deal)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypeDeal, stored.ID, stored.Title)
	return stored, nil
}

func (s *ContentService) UpdateDeal(ctx context.Context, actor string, deal *domain.Deal) (*domain.Deal, error) {
	if err := validateDeal(deal); err != nil {
		return nil, err
	}
	stored, err := s.deals.Update(ctx, deal)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrDealNotFound
		case isUniqueViolation(err):
			return nil, ErrSlugConflict
		default:
			return nil, err
		}
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypeDeal, stored.ID, stored.Title)
	return stored, nil
}

func (s *ContentService) DeleteDeal(ctx context.Context, actor string, id uuid.UUID) error {
	deal, err := s.GetDeal(ctx, id)
	if err != nil {
		return err
	}
	if err := s.deals.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrDealNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypeDeal, id, deal.Title)
	return nil
}

func validateDeal(deal *domain.Deal) error {
	if deal.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if deal.Discount < 1 || deal.Discount > 100 {
		return fmt.Errorf("%w: discount must be between 1 and 100", ErrValidation)
	}
	if deal.ValidUntil.IsZero() {
		return fmt.Errorf("%w: valid_until is required", ErrValidation)
	}
	if len(deal.ShortDescription) > maxShortDescriptionLen {
		return fmt.Errorf("%w: short_description exceeds %d characters", ErrValidation, maxShortDescriptionLen)
	}
	slug, err := resolveSlug(deal.Slug, deal.Title)
	if err != nil {
		return err
	}
	deal.Slug = slug
	deal.Destinations = deal.Destinations.Clean()
	deal.Terms = deal.Terms.Clean()
	deal.Highlights = deal.Highlights.Clean()
	return nil
}

// --- agency services ---

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *ContentService) ListActiveServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *ContentService) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *ContentService) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	svc, err := s.services.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *ContentService) CreateService(ctx context.Context, actor string, svc *domain.Service) (*domain.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	stored, err := s.services.Create(ctx, svc)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypeService, stored.ID, stored.Name)
	return stored, nil
}

func (s *ContentService) UpdateService(ctx context.Context, actor string, svc *domain.Service) (*domain.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	stored, err := s.services.Update(ctx, svc)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrServiceNotFound
		case isUniqueViolation(err):
			return nil, ErrSlugConflict
		default:
			return nil, err
		}
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypeService, stored.ID, stored.Name)
	return stored, nil
}

func (s *ContentService) DeleteService(ctx context.Context, actor string, id uuid.UUID) error {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return err
	}
	if err := s.services.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrServiceNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypeService, id, svc.Name)
	return nil
}

func validateService(svc *domain.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(svc.ShortDescription) > maxShortDescriptionLen {
		return fmt.Errorf("%w: short_description exceeds %d characters", ErrValidation, maxShortDescriptionLen)
	}
	slug, err := resolveSlug(svc.Slug, svc.Name)
	if err != nil {
		return err
	}
	svc.Slug = slug
	svc.Features = svc.Features.Clean()
	return nil
}

// --- hero slides ---

func (s *ContentService) ListHeroSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	return s.slides.List(ctx)
}

func (s *ContentService) ListActiveHeroSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	return s.slides.ListActive(ctx)
}

func (s *ContentService) GetHeroSlide(ctx context.Context, id uuid.UUID) (*domain.HeroSlide, error) {
	slide, err := s.slides.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrHeroSlideNotFound
		}
		return nil, err
	}
	return slide, nil
}

func (s *ContentService) CreateHeroSlide(ctx context.Context, actor string, slide *domain.HeroSlide) (*domain.HeroSlide, error) {
	if err := validateHeroSlide(slide); err != nil {
		return nil, err
	}
	stored, err := s.slides.Create(ctx, slide)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypeHeroSlide, stored.ID, stored.Title)
	return stored, nil
}

func (s *ContentService) UpdateHeroSlide(ctx context.Context, actor string, slide *domain.HeroSlide) (*domain.HeroSlide, error) {
	if err := validateHeroSlide(slide); err != nil {
		return nil, err
	}
	stored, err := s.slides.Update(ctx, slide)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrHeroSlideNotFound
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypeHeroSlide, stored.ID, stored.Title)
	return stored, nil
}

func (s *ContentService) DeleteHeroSlide(ctx context.Context, actor string, id uuid.UUID) error {
	slide, err := s.GetHeroSlide(ctx, id)
	if err != nil {
		return err
	}
	if err := s.slides.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrHeroSlideNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypeHeroSlide, id, slide.Title)
	return nil
}

func validateHeroSlide(slide *domain.HeroSlide) error {
	if slide.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if slide.Image == "" {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	return nil
}

// --- testimonials ---

func (s *ContentService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx)
}

func (s *ContentService) ListActiveTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.ListActive(ctx)
}

func (s *ContentService) GetTestimonial(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	tst, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return tst, nil
}

func (s *ContentService) CreateTestimonial(ctx context.Context, actor string, tst *domain.Testimonial) (*domain.Testimonial, error) {
	if err := validateTestimonial(tst); err != nil {
		return nil, err
	}
	stored, err := s.testimonials.Create(ctx, tst)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypeTestimonial, stored.ID, stored.Name)
	return stored, nil
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, actor string, tst *domain.Testimonial) (*domain.Testimonial, error) {
	if err := validateTestimonial(tst); err != nil {
		return nil, err
	}
	stored, err := s.testimonials.Update(ctx, tst)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypeTestimonial, stored.ID, stored.Name)
	return stored, nil
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, actor string, id uuid.UUID) error {
	tst, err := s.GetTestimonial(ctx, id)
	if err != nil {
		return err
	}
	if err := s.testimonials.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrTestimonialNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypeTestimonial, id, tst.Name)
	return nil
}

func validateTestimonial(tst *domain.Testimonial) error {
	if tst.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if tst.Content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if tst.Rating < 1 || tst.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

// --- deals popup ---

func (s *ContentService) ListPopups(ctx context.Context) ([]domain.DealsPopup, error) {
	return s.popups.List(ctx)
}

func (s *ContentService) GetPopup(ctx context.Context, id uuid.UUID) (*domain.DealsPopup, error) {
	popup, err := s.popups.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPopupNotFound
		}
		return nil, err
	}
	return popup, nil
}

func (s *ContentService) CreatePopup(ctx context.Context, actor string, popup *domain.DealsPopup) (*domain.DealsPopup, error) {
	if err := validatePopup(popup); err != nil {
		return nil, err
	}
	stored, err := s.popups.Create(ctx, popup)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionCreate, entityTypePopup, stored.ID, stored.Title)
	return stored, nil
}

func (s *ContentService) UpdatePopup(ctx context.Context, actor string, popup *domain.DealsPopup) (*domain.DealsPopup, error) {
	if err := validatePopup(popup); err != nil {
		return nil, err
	}
	stored, err := s.popups.Update(ctx, popup)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPopupNotFound
		}
		return nil, err
	}
	s.audit.Record(ctx, actor, domain.AuditActionUpdate, entityTypePopup, stored.ID, stored.Title)
	return stored, nil
}

func (s *ContentService) DeletePopup(ctx context.Context, actor string, id uuid.UUID) error {
	popup, err := s.GetPopup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.popups.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrPopupNotFound
		}
		return err
	}
	s.audit.Record(ctx, actor, domain.AuditActionDelete, entityTypePopup, id, popup.Title)
	return nil
}

func validatePopup(popup *domain.DealsPopup) error {
	if popup.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if popup.DealSlug != nil && !util.IsValidSlug(*popup.DealSlug) {
		return fmt.Errorf("%w: deal_slug is not a valid slug", ErrValidation)
	}
	return nil
}
