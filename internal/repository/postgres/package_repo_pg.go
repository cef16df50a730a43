package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const packageColumns = `id, slug, name, destination_slug, country, description, short_description,
	       duration, price, includes, excludes, terms, itinerary, category,
	       featured, is_active, sort_order, created_at, updated_at`

type PackageRepository struct {
	db *sqlx.DB
}

func NewPackageRepo(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	const query = `
		INSERT INTO travel_package (
			id, slug, name, destination_slug, country, description, short_description,
			duration, price, includes, excludes, terms, itinerary, category,
			featured, is_active, sort_order
		) VALUES (
			:id, :slug, :name, :destination_slug, :country, :description, :short_description,
			:duration, :price, :includes, :excludes, :terms, :itinerary, :category,
			:featured, :is_active, :sort_order
		)
		RETURNING ` + packageColumns

	rows, err := r.db.NamedQueryContext(ctx, query, pkg)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.Package
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *PackageRepository) Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	const query = `
		UPDATE travel_package
		SET slug = :slug,
		    name = :name,
		    destination_slug = :destination_slug,
		    country = :country,
		    description = :description,
		    short_description = :short_description,
		    duration = :duration,
		    price = :price,
		    includes = :includes,
		    excludes = :excludes,
		    terms = :terms,
		    itinerary = :itinerary,
		    category = :category,
		    featured = :featured,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + packageColumns

	rows, err := r.db.NamedQueryContext(ctx, query, pkg)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.Package
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM travel_package WHERE id = $1`, id)
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

func (r *PackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	const query = `SELECT ` + packageColumns + ` FROM travel_package WHERE id = $1`
	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) FindBySlug(ctx context.Context, slug string) (*domain.Package, error) {
	const query = `SELECT ` + packageColumns + ` FROM travel_package WHERE slug = $1`
	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, slug); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	const query = `SELECT ` + packageColumns + ` FROM travel_package ORDER BY sort_order ASC, name ASC`
	pkgs := make([]domain.Package, 0)
	if err := r.db.SelectContext(ctx, &pkgs, query); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]domain.Package, error) {
	const query = `SELECT ` + packageColumns + ` FROM travel_package WHERE is_active ORDER BY sort_order ASC, name ASC`
	pkgs := make([]domain.Package, 0)
	if err := r.db.SelectContext(ctx, &pkgs, query); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *PackageRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.Package, error) {
	const sqlQuery = `SELECT ` + packageColumns + `
		FROM travel_package
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2`
	pkgs := make([]domain.Package, 0)
	if err := r.db.SelectContext(ctx, &pkgs, sqlQuery, escapeLike(query), limit); err != nil {
		return nil, err
	}
	return pkgs, nil
}

var _ ports.PackageRepository = (*PackageRepository)(nil)
