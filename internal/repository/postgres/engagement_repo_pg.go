package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepo(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `id, name, email, phone, destination, travel_dates, party_size,
	       budget, message, created_at`

func (r *ContactRepository) Insert(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	const query = `
		INSERT INTO contact_submission (
			id, name, email, phone, destination, travel_dates, party_size, budget, message
		) VALUES (
			:id, :name, :email, :phone, :destination, :travel_dates, :party_size, :budget, :message
		)
		RETURNING ` + contactColumns

	rows, err := r.db.NamedQueryContext(ctx, query, submission)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.ContactSubmission
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	const query = `SELECT ` + contactColumns + `
		FROM contact_submission
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	submissions := make([]domain.ContactSubmission, 0)
	if err := r.db.SelectContext(ctx, &submissions, query, limit, offset); err != nil {
		return nil, err
	}
	return submissions, nil
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

type NewsletterRepository struct {
	db *sqlx.DB
}

func NewNewsletterRepo(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	const query = `
		INSERT INTO newsletter_subscriber (id, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query, uuid.New(), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *NewsletterRepository) List(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	const query = `SELECT id, email, subscribed_at FROM newsletter_subscriber ORDER BY subscribed_at DESC`
	subscribers := make([]domain.NewsletterSubscriber, 0)
	if err := r.db.SelectContext(ctx, &subscribers, query); err != nil {
		return nil, err
	}
	return subscribers, nil
}

var _ ports.NewsletterRepository = (*NewsletterRepository)(nil)

const popupColumns = `id, title, description, image, deal_slug, button_text, button_link,
	       is_active, sort_order, created_at, updated_at`

type PopupRepository struct {
	db *sqlx.DB
}

func NewPopupRepo(db *sqlx.DB) *PopupRepository {
	return &PopupRepository{db: db}
}

func (r *PopupRepository) Create(ctx context.Context, popup *domain.DealsPopup) (*domain.DealsPopup, error) {
	if popup.ID == uuid.Nil {
		popup.ID = uuid.New()
	}
	const query = `
		INSERT INTO deals_popup (
			id, title, description, image, deal_slug, button_text, button_link,
			is_active, sort_order
		) VALUES (
			:id, :title, :description, :image, :deal_slug, :button_text, :button_link,
			:is_active, :sort_order
		)
		RETURNING ` + popupColumns

	rows, err := r.db.NamedQueryContext(ctx, query, popup)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.DealsPopup
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *PopupRepository) Update(ctx context.Context, popup *domain.DealsPopup) (*domain.DealsPopup, error) {
	const query = `
		UPDATE deals_popup
		SET title = :title,
		    description = :description,
		    image = :image,
		    deal_slug = :deal_slug,
		    button_text = :button_text,
		    button_link = :button_link,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + popupColumns

	rows, err := r.db.NamedQueryContext(ctx, query, popup)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.DealsPopup
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *PopupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM deals_popup WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PopupRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.DealsPopup, error) {
	const query = `SELECT ` + popupColumns + ` FROM deals_popup WHERE id = $1`
	var popup domain.DealsPopup
	if err := r.db.GetContext(ctx, &popup, query, id); err != nil {
		return nil, err
	}
	return &popup, nil
}

func (r *PopupRepository) List(ctx context.Context) ([]domain.DealsPopup, error) {
	const query = `SELECT ` + popupColumns + ` FROM deals_popup ORDER BY sort_order ASC, title ASC`
	popups := make([]domain.DealsPopup, 0)
	if err := r.db.SelectContext(ctx, &popups, query); err != nil {
		return nil, err
	}
	return popups, nil
}

func (r *PopupRepository) FindActive(ctx context.Context) (*domain.DealsPopup, error) {
	const query = `SELECT ` + popupColumns + `
		FROM deals_popup
		WHERE is_active
		ORDER BY sort_order ASC, title ASC
		LIMIT 1`
	var popup domain.DealsPopup
	if err := r.db.GetContext(ctx, &popup, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &popup, nil
}

var _ ports.PopupRepository = (*PopupRepository)(nil)
