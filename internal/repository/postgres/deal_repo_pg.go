package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const dealColumns = `id, slug, title, description, short_description, original_price,
	       discounted_price, discount, valid_until, destinations, image, category,
	       terms, highlights, featured, is_active, sort_order, created_at, updated_at`

type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepo(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	const query = `
		INSERT INTO deal (
			id, slug, title, description, short_description, original_price,
			discounted_price, discount, valid_until, destinations, image, category,
			terms, highlights, featured, is_active, sort_order
		) VALUES (
			:id, :slug, :title, :description, :short_description, :original_price,
			:discounted_price, :discount, :valid_until, :destinations, :image, :category,
			:terms, :highlights, :featured, :is_active, :sort_order
		)
		RETURNING ` + dealColumns

	rows, err := r.db.NamedQueryContext(ctx, query, deal)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.Deal
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	const query = `
		UPDATE deal
		SET slug = :slug,
		    title = :title,
		    description = :description,
		    short_description = :short_description,
		    original_price = :original_price,
		    discounted_price = :discounted_price,
		    discount = :discount,
		    valid_until = :valid_until,
		    destinations = :destinations,
		    image = :image,
		    category = :category,
		    terms = :terms,
		    highlights = :highlights,
		    featured = :featured,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + dealColumns

	rows, err := r.db.NamedQueryContext(ctx, query, deal)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.Deal
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *DealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM deal WHERE id = $1`, id)
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

func (r *DealRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	const query = `SELECT ` + dealColumns + ` FROM deal WHERE id = $1`
	var deal domain.Deal
	if err := r.db.GetContext(ctx, &deal, query, id); err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) FindBySlug(ctx context.Context, slug string) (*domain.Deal, error) {
	const query = `SELECT ` + dealColumns + ` FROM deal WHERE slug = $1`
	var deal domain.Deal
	if err := r.db.GetContext(ctx, &deal, query, slug); err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) List(ctx context.Context) ([]domain.Deal, error) {
	const query = `SELECT ` + dealColumns + ` FROM deal ORDER BY sort_order ASC, title ASC`
	deals := make([]domain.Deal, 0)
	if err := r.db.SelectContext(ctx, &deals, query); err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *DealRepository) ListActive(ctx context.Context) ([]domain.Deal, error) {
	const query = `SELECT ` + dealColumns + ` FROM deal WHERE is_active ORDER BY sort_order ASC, title ASC`
	deals := make([]domain.Deal, 0)
	if err := r.db.SelectContext(ctx, &deals, query); err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *DealRepository) SearchByTitle(ctx context.Context, query string, limit int) ([]domain.Deal, error) {
	const sqlQuery = `SELECT ` + dealColumns + `
		FROM deal
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY title ASC
		LIMIT $2`
	deals := make([]domain.Deal, 0)
	if err := r.db.SelectContext(ctx, &deals, sqlQuery, escapeLike(query), limit); err != nil {
		return nil, err
	}
	return deals, nil
}

var _ ports.DealRepository = (*DealRepository)(nil)
