package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

// AuditService records who changed what in the admin portal. Recording is
// best effort: a failed insert is logged and swallowed so the mutation that
// triggered it still succeeds.
type AuditService struct {
	entries ports.AuditLogRepository
	limit   int
}

func NewAuditService(entries ports.AuditLogRepository, limit int) *AuditService {
	if limit <= 0 {
		limit = 200
	}
	return &AuditService{entries: entries, limit: limit}
}

func (s *AuditService) Record(ctx context.Context, actor string, action domain.AuditAction, entityType string, entityID uuid.UUID, entityName string) {
	entry := &domain.AuditLogEntry{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		log.Printf("audit: record %s %s %s: %v", actor, action, entityType, err)
	}
}

func (s *AuditService) Recent(ctx context.Context) ([]domain.AuditLogEntry, error) {
	return s.entries.List(ctx, s.limit)
}
