package ports

import (
	"context"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLogEntry) error
	List(ctx context.Context, limit int) ([]domain.AuditLogEntry, error)
}
