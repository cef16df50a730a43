package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

func newTestContent() (*ContentService, *memAuditRepo) {
	audit, auditRepo := newTestAudit()
	svc := NewContentService(
		newMemDealRepo(),
		newMemServiceRepo(),
		newMemSlideRepo(),
		newMemTestimonialRepo(),
		newMemPopupRepo(),
		audit,
	)
	return svc, auditRepo
}

func validDeal() domain.Deal {
	return domain.Deal{
		Title:      "Summer in Santorini",
		Discount:   25,
		ValidUntil: time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestCreateDealDiscountBounds(t *testing.T) {
	svc, _ := newTestContent()

	cases := []struct {
		name     string
		discount int
		wantErr  bool
	}{
		{"zero", 0, true},
		{"negative", -5, true},
		{"over hundred", 150, true},
		{"lower bound", 1, false},
		{"upper bound", 100, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deal := validDeal()
			deal.Title = deal.Title + " " + tc.name
			deal.Discount = tc.discount
			_, err := svc.CreateDeal(context.Background(), "admin", &deal)
			if tc.wantErr && !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
		})
	}
}

func TestCreateDealRequiresValidUntil(t *testing.T) {
	svc, _ := newTestContent()

	deal := validDeal()
	deal.ValidUntil = time.Time{}
	_, err := svc.CreateDeal(context.Background(), "admin", &deal)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCreateDealSlugConflict(t *testing.T) {
	svc, _ := newTestContent()

	first := validDeal()
	if _, err := svc.CreateDeal(context.Background(), "admin", &first); err != nil {
		t.Fatalf("first create: %v", err)
	}
	second := validDeal()
	_, err := svc.CreateDeal(context.Background(), "admin", &second)
	if !errors.Is(err, ErrSlugConflict) {
		t.Fatalf("err = %v, want ErrSlugConflict", err)
	}
}

func TestRoundTripDeal(t *testing.T) {
	svc, _ := newTestContent()
	ctx := context.Background()

	deal := validDeal()
	deal.Destinations = domain.StringList{"Santorini", ""}
	stored, err := svc.CreateDeal(ctx, "admin", &deal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := svc.GetDeal(ctx, stored.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Title != stored.Title || fetched.Slug != stored.Slug {
		t.Fatalf("fetched deal differs: %+v vs %+v", fetched, stored)
	}
	if len(fetched.Destinations) != 1 {
		t.Fatalf("destinations = %v, want blank entry dropped", fetched.Destinations)
	}
}

func TestTestimonialRatingBounds(t *testing.T) {
	svc, _ := newTestContent()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateTestimonial(context.Background(), "admin", &domain.Testimonial{
			Name:    "A traveller",
			Content: "Wonderful trip",
			Rating:  rating,
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("rating %d: err = %v, want ErrValidation", rating, err)
		}
	}

	if _, err := svc.CreateTestimonial(context.Background(), "admin", &domain.Testimonial{
		Name:    "A traveller",
		Content: "Wonderful trip",
		Rating:  5,
	}); err != nil {
		t.Fatalf("valid testimonial: %v", err)
	}
}

func TestHeroSlideRequiresImage(t *testing.T) {
	svc, _ := newTestContent()

	_, err := svc.CreateHeroSlide(context.Background(), "admin", &domain.HeroSlide{Title: "Discover more"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestPopupDealSlugValidated(t *testing.T) {
	svc, _ := newTestContent()

	bad := "Not A Slug"
	_, err := svc.CreatePopup(context.Background(), "admin", &domain.DealsPopup{Title: "Flash sale", DealSlug: &bad})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	good := "summer-in-santorini"
	if _, err := svc.CreatePopup(context.Background(), "admin", &domain.DealsPopup{Title: "Flash sale", DealSlug: &good}); err != nil {
		t.Fatalf("valid popup: %v", err)
	}
}

func TestDeleteContentMissing(t *testing.T) {
	svc, _ := newTestContent()
	ctx := context.Background()
	id := uuid.New()

	if err := svc.DeleteDeal(ctx, "admin", id); !errors.Is(err, ErrDealNotFound) {
		t.Fatalf("deal: err = %v", err)
	}
	if err := svc.DeleteService(ctx, "admin", id); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("service: err = %v", err)
	}
	if err := svc.DeleteHeroSlide(ctx, "admin", id); !errors.Is(err, ErrHeroSlideNotFound) {
		t.Fatalf("hero slide: err = %v", err)
	}
	if err := svc.DeleteTestimonial(ctx, "admin", id); !errors.Is(err, ErrTestimonialNotFound) {
		t.Fatalf("testimonial: err = %v", err)
	}
	if err := svc.DeletePopup(ctx, "admin", id); !errors.Is(err, ErrPopupNotFound) {
		t.Fatalf("popup: err = %v", err)
	}
}

func TestMutationsAudited(t *testing.T) {
	svc, auditRepo := newTestContent()
	ctx := context.Background()

	deal := validDeal()
	stored, err := svc.CreateDeal(ctx, "editor", &deal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	stored.Discount = 30
	if _, err := svc.UpdateDeal(ctx, "editor", stored); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.DeleteDeal(ctx, "editor", stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(auditRepo.entries) != 3 {
		t.Fatalf("audit entries = %d, want 3", len(auditRepo.entries))
	}
	wantActions := []domain.AuditAction{domain.AuditActionCreate, domain.AuditActionUpdate, domain.AuditActionDelete}
	for i, want := range wantActions {
		if auditRepo.entries[i].Action != want {
			t.Fatalf("entry %d action = %s, want %s", i, auditRepo.entries[i].Action, want)
		}
		if auditRepo.entries[i].Actor != "editor" {
			t.Fatalf("entry %d actor = %s", i, auditRepo.entries[i].Actor)
		}
	}
}
