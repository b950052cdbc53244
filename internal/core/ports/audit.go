package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must not block request handling beyond queue capacity and must never fail
// the operation being audited.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// List returns the newest events first, capped at limit.
	List(ctx context.Context, limit int64) ([]*domain.AuditEvent, error)
}

// AuditService exposes the audit trail to the admin API.
type AuditService interface {
	List(ctx context.Context, limit int64) ([]*domain.AuditEvent, error)
}
