package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

type AuditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepo(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Insert(ctx context.Context, entry *domain.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	const query = `
		INSERT INTO audit_log (id, actor, action, entity_type, entity_id, entity_name)
		VALUES (:id, :actor, :action, :entity_type, :entity_id, :entity_name)`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *AuditLogRepository) List(ctx context.Context, limit int) ([]domain.AuditLogEntry, error) {
	const query = `
		SELECT id, actor, action, entity_type, entity_id, entity_name, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1`
	entries := make([]domain.AuditLogEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ ports.AuditLogRepository = (*AuditLogRepository)(nil)
