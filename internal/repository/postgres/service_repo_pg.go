package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

const serviceColumns = `id, slug, name, description, short_description, icon, features,
	       price, duration, category, image, featured, is_active, sort_order,
	       created_at, updated_at`

type ServiceRepository struct {
	db *sqlx.DB
}

func NewServiceRepo(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	const query = `
		INSERT INTO agency_service (
			id, slug, name, description, short_description, icon, features,
			price, duration, category, image, featured, is_active, sort_order
		) VALUES (
			:id, :slug, :name, :description, :short_description, :icon, :features,
			:price, :duration, :category, :image, :featured, :is_active, :sort_order
		)
		RETURNING ` + serviceColumns

	rows, err := r.db.NamedQueryContext(ctx, query, svc)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.Service
		if err = rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	return nil, sql.ErrNoRows
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	const query = `
		UPDATE agency_service
		SET slug = :slug,
		    name = :name,
		    description = :description,
		    short_description = :short_description,
		    icon = :icon,
		    features = :features,
		    price = :price,
		    duration = :duration,
		    category = :category,
		    image = :image,
		    featured = :featured,
		    is_active = :is_active,
		    sort_order = :sort_order,
		    updated_at = NOW()
		WHERE id = :id
		RETURNING ` + serviceColumns

	rows, err := r.db.NamedQueryContext(ctx, query, svc)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if rows.Next() {
		var updated domain.Service
		if err = rows.StructScan(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, sql.ErrNoRows
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM agency_service WHERE id = $1`, id)
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

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM agency_service WHERE id = $1`
	var svc domain.Service
	if err := r.db.GetContext(ctx, &svc, query, id); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM agency_service WHERE slug = $1`
	var svc domain.Service
	if err := r.db.GetContext(ctx, &svc, query, slug); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM agency_service ORDER BY sort_order ASC, name ASC`
	services := make([]domain.Service, 0)
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM agency_service WHERE is_active ORDER BY sort_order ASC, name ASC`
	services := make([]domain.Service, 0)
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.Service, error) {
	const sqlQuery = `SELECT ` + serviceColumns + `
		FROM agency_service
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2`
	services := make([]domain.Service, 0)
	if err := r.db.SelectContext(ctx, &services, sqlQuery, escapeLike(query), limit); err != nil {
		return nil, err
	}
	return services, nil
}

var _ ports.ServiceRepository = (*ServiceRepository)(nil)
