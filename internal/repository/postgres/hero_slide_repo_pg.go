package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const heroSlideColumns = `id, eyebrow, title, highlight, subtitle, button_text, button_link,
	       image, is_active, sort_order, created_at, updated_at`

type HeroSlideRepository struct {
	db *sqlx.DB
}

func NewHeroSlideRepo(db *sqlx.DB) *HeroSlideRepository {
	return &HeroSlideRepository{db: db}
}

func (r *HeroSlideRepository) Create(ctx context.Context, slide *domain.HeroSlide) (*domain.HeroSlide, error) {
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	const query = `
		INSERT INTO hero_slide (
			id, eyebrow, title, highlight, subtitle, button_text, button_link,
			image, is_active, sort_order
		) VALUES (
			:id, :eyebrow, :title, :highlight, :subtitle, :button_text, :button_link,
			:image, :is_active, :sort_order
		)
		RETURNING ` + heroSlideColumns

	rows, err := r.db.NamedQueryContext(ctx, query, slide)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.HeroSlide
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *HeroSlideRepository) Update(ctx context.Context, slide *domain.HeroSlide) (*domain.HeroSlide, error) {
	const query = `
		UPDATE hero_slide
		SET eyebrow = :eyebrow,
		    title = :title,
		    highlight = :highlight,
		    subtitle = :subtitle,
		    button_text = :button_text,
		    button_link = :button_link,
		    image = :image,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + heroSlideColumns

	rows, err := r.db.NamedQueryContext(ctx, query, slide)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.HeroSlide
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *HeroSlideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hero_slide WHERE id = $1`, id)
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

func (r *HeroSlideRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.HeroSlide, error) {
	const query = `SELECT ` + heroSlideColumns + ` FROM hero_slide WHERE id = $1`
	var slide domain.HeroSlide
	if err := r.db.GetContext(ctx, &slide, query, id); err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *HeroSlideRepository) List(ctx context.Context) ([]domain.HeroSlide, error) {
	const query = `SELECT ` + heroSlideColumns + ` FROM hero_slide ORDER BY sort_order ASC, title ASC`
	slides := make([]domain.HeroSlide, 0)
	if err := r.db.SelectContext(ctx, &slides, query); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *HeroSlideRepository) ListActive(ctx context.Context) ([]domain.HeroSlide, error) {
	const query = `SELECT ` + heroSlideColumns + ` FROM hero_slide WHERE is_active ORDER BY sort_order ASC, title ASC`
	slides := make([]domain.HeroSlide, 0)
	if err := r.db.SelectContext(ctx, &slides, query); err != nil {
		return nil, err
	}
	return slides, nil
}

var _ ports.HeroSlideRepository = (*HeroSlideRepository)(nil)
