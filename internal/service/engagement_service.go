package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

// popupCooldown is how long the deals popup stays hidden after the visitor
// last saw it.
const popupCooldown = time.Hour

// PopupDecision tells the public widget whether to show the popup and, when
// shown, what to render.
type PopupDecision struct {
	Show  bool               `json:"show"`
	Popup *domain.DealsPopup `json:"popup,omitempty"`
}

// EngagementService handles the public site's inbound traffic: contact
// enquiries, newsletter signups and the deals popup decision.
type EngagementService struct {
	contacts   ports.ContactRepository
	newsletter ports.NewsletterRepository
	popups     ports.PopupRepository
	now        func() time.Time
}

func NewEngagementService(
	contacts ports.ContactRepository,
	newsletter ports.NewsletterRepository,
	popups ports.PopupRepository,
) *EngagementService {
	return &EngagementService{
		contacts:   contacts,
		newsletter: newsletter,
		popups:     popups,
		now:        time.Now,
	}
}

func (s *EngagementService) SubmitContact(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	submission.Name = strings.TrimSpace(submission.Name)
	submission.Email = strings.TrimSpace(submission.Email)
	submission.Message = strings.TrimSpace(submission.Message)

	if submission.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !util.IsValidEmail(submission.Email) {
		return nil, fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	if submission.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	return s.contacts.Insert(ctx, submission)
}

func (s *EngagementService) ListContacts(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.contacts.List(ctx, limit, offset)
}

// Subscribe reports whether the address was newly added. Resubscribing an
// existing address is not an error; the widget shows the same confirmation
// either way.
func (s *EngagementService) Subscribe(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !util.IsValidEmail(email) {
		return false, fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	return s.newsletter.Subscribe(ctx, email)
}

func (s *EngagementService) ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	return s.newsletter.List(ctx)
}

// PopupForVisitor decides whether the popup shows. lastSeen is the
// client-reported timestamp of the previous impression; a nil value means
// the visitor has never seen it. Future timestamps suppress too, so a
// skewed client clock fails quiet rather than nagging.
func (s *EngagementService) PopupForVisitor(ctx context.Context, lastSeen *time.Time) (*PopupDecision, error) {
	if lastSeen != nil && s.now().Sub(*lastSeen) < popupCooldown {
		return &PopupDecision{Show: false}, nil
	}

	popup, err := s.popups.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if popup == nil {
		return &PopupDecision{Show: false}, nil
	}
	return &PopupDecision{Show: true, Popup: popup}, nil
}
