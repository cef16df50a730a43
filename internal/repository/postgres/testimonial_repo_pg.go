package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const testimonialColumns = `id, name, location, trip, content, rating, image, source,
	       featured, is_active, sort_order, created_at, updated_at`

type TestimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepo(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, tst *domain.Testimonial) (*domain.Testimonial, error) {
	if tst.ID == uuid.Nil {
		tst.ID = uuid.New()
	}
	const query = `
		INSERT INTO testimonial (
			id, name, location, trip, content, rating, image, source,
			featured, is_active, sort_order
		) VALUES (
			:id, :name, :location, :trip, :content, :rating, :image, :source,
			:featured, :is_active, :sort_order
		)
		RETURNING ` + testimonialColumns

	rows, err := r.db.NamedQueryContext(ctx, query, tst)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.Testimonial
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *TestimonialRepository) Update(ctx context.Context, tst *domain.Testimonial) (*domain.Testimonial, error) {
	const query = `
		UPDATE testimonial
		SET name = :name,
		    location = :location,
		    trip = :trip,
		    content = :content,
		    rating = :rating,
		    image = :image,
		    source = :source,
		    featured = :featured,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + testimonialColumns

	rows, err := r.db.NamedQueryContext(ctx, query, tst)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.Testimonial
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonial WHERE id = $1`, id)
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

func (r *TestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	const query = `SELECT ` + testimonialColumns + ` FROM testimonial WHERE id = $1`
	var tst domain.Testimonial
	if err := r.db.GetContext(ctx, &tst, query, id); err != nil {
		return nil, err
	}
	return &tst, nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	const query = `SELECT ` + testimonialColumns + ` FROM testimonial ORDER BY sort_order ASC, name ASC`
	testimonials := make([]domain.Testimonial, 0)
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *TestimonialRepository) ListActive(ctx context.Context) ([]domain.Testimonial, error) {
	const query = `SELECT ` + testimonialColumns + ` FROM testimonial WHERE is_active ORDER BY sort_order ASC, name ASC`
	testimonials := make([]domain.Testimonial, 0)
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, err
	}
	return testimonials, nil
}

var _ ports.TestimonialRepository = (*TestimonialRepository)(nil)
