package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLogEntry records one successful admin mutation.
type AuditLogEntry struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	Actor      string      `db:"actor" json:"actor"`
	Action     AuditAction `db:"action" json:"action"`
	EntityType string      `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID   `db:"entity_id" json:"entity_id"`
	EntityName string      `db:"entity_name" json:"entity_name"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}
