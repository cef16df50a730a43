package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const destinationColumns = `id, country_id, slug, name, hero_image, images, summary, description,
	       price_from, price_to, best_time, duration, tags, highlights,
	       latitude, longitude, featured, is_active, sort_order, created_at, updated_at`

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) Create(ctx context.Context, dest *domain.Destination) (*domain.Destination, error) {
	if dest.ID == uuid.Nil {
		dest.ID = uuid.New()
	}
	const query = `
		INSERT INTO destination (
			id, country_id, slug, name, hero_image, images, summary, description,
			price_from, price_to, best_time, duration, tags, highlights,
			latitude, longitude, featured, is_active, sort_order
		) VALUES (
			:id, :country_id, :slug, :name, :hero_image, :images, :summary, :description,
			:price_from, :price_to, :best_time, :duration, :tags, :highlights,
			:latitude, :longitude, :featured, :is_active, :sort_order
		)
		RETURNING ` + destinationColumns

	rows, err := r.db.NamedQueryContext(ctx, query, dest)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.Destination
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *DestinationRepository) Update(ctx context.Context, dest *domain.Destination) (*domain.Destination, error) {
	const query = `
		UPDATE destination
		SET country_id = :country_id,
		    slug = :slug,
		    name = :name,
		    hero_image = :hero_image,
		    images = :images,
		    summary = :summary,
		    description = :description,
		    price_from = :price_from,
		    price_to = :price_to,
		    best_time = :best_time,
		    duration = :duration,
		    tags = :tags,
		    highlights = :highlights,
		    latitude = :latitude,
		    longitude = :longitude,
		    featured = :featured,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + destinationColumns

	rows, err := r.db.NamedQueryContext(ctx, query, dest)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.Destination
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *DestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM destination WHERE id = $1`, id)
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

func (r *DestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM destination WHERE id = $1`
	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM destination WHERE slug = $1`
	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, slug); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM destination ORDER BY sort_order ASC, name ASC`
	dests := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &dests, query); err != nil {
		return nil, err
	}
	return dests, nil
}

func (r *DestinationRepository) ListActive(ctx context.Context) ([]domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM destination WHERE is_active ORDER BY sort_order ASC, name ASC`
	dests := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &dests, query); err != nil {
		return nil, err
	}
	return dests, nil
}

func (r *DestinationRepository) ListActiveByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + `
		FROM destination
		WHERE is_active AND country_id = $1
		ORDER BY sort_order ASC, name ASC`
	dests := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &dests, query, countryID); err != nil {
		return nil, err
	}
	return dests, nil
}

func (r *DestinationRepository) ListOptions(ctx context.Context) ([]domain.DestinationOption, error) {
	const query = `
		SELECT d.id, d.slug, d.name, c.name AS country_name, c.slug AS country_slug
		FROM destination d
		JOIN country c ON c.id = d.country_id
		ORDER BY c.name ASC, d.name ASC`
	options := make([]domain.DestinationOption, 0)
	if err := r.db.SelectContext(ctx, &options, query); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *DestinationRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.DestinationOption, error) {
	const sqlQuery = `
		SELECT d.id, d.slug, d.name, c.name AS country_name, c.slug AS country_slug
		FROM destination d
		JOIN country c ON c.id = d.country_id
		WHERE d.name ILIKE '%' || $1 || '%'
		ORDER BY d.name ASC
		LIMIT $2`
	options := make([]domain.DestinationOption, 0)
	if err := r.db.SelectContext(ctx, &options, sqlQuery, escapeLike(query), limit); err != nil {
		return nil, err
	}
	return options, nil
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
