package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const countryColumns = `id, name, slug, hero_image, summary, description, region,
	       popular_destinations, featured, is_active, sort_order, created_at, updated_at`

type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepo(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) Create(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	if country.ID == uuid.Nil {
		country.ID = uuid.New()
	}
	const query = `
		INSERT INTO country (
			id, name, slug, hero_image, summary, description, region,
			popular_destinations, featured, is_active, sort_order
		) VALUES (
			:id, :name, :slug, :hero_image, :summary, :description, :region,
			:popular_destinations, :featured, :is_active, :sort_order
		)
		RETURNING ` + countryColumns

	rows, err := r.db.NamedQueryContext(ctx, query, country)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.Country
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *CountryRepository) Update(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	const query = `
		UPDATE country
		SET name = :name,
		    slug = :slug,
		    hero_image = :hero_image,
		    summary = :summary,
		    description = :description,
		    region = :region,
		    popular_destinations = :popular_destinations,
		    featured = :featured,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + countryColumns

	rows, err := r.db.NamedQueryContext(ctx, query, country)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.Country
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *CountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM country WHERE id = $1`, id)
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

func (r *CountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	const query = `SELECT ` + countryColumns + ` FROM country WHERE id = $1`
	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, id); err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	const query = `SELECT ` + countryColumns + ` FROM country WHERE slug = $1`
	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, slug); err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	const query = `SELECT ` + countryColumns + ` FROM country ORDER BY sort_order ASC, name ASC`
	countries := make([]domain.Country, 0)
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepository) ListActive(ctx context.Context) ([]domain.Country, error) {
	const query = `SELECT ` + countryColumns + ` FROM country WHERE is_active ORDER BY sort_order ASC, name ASC`
	countries := make([]domain.Country, 0)
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepository) ListOptions(ctx context.Context) ([]domain.CountryOption, error) {
	const query = `SELECT id, name, slug FROM country ORDER BY name ASC`
	options := make([]domain.CountryOption, 0)
	if err := r.db.SelectContext(ctx, &options, query); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *CountryRepository) CountDestinations(ctx context.Context, countryID uuid.UUID) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM destination WHERE country_id = $1`, countryID); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.CountryRepository = (*CountryRepository)(nil)
