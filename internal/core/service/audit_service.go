package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditService reads the audit trail for the admin API.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// List returns the newest events first. A non-positive limit falls back to
// defaultAuditLimit; anything above maxAuditLimit is clamped.
func (s *AuditService) List(ctx context.Context, limit int64) ([]*domain.AuditEvent, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return s.repo.List(ctx, limit)
}

// auditEvent builds the record for one successful mutation by actor.
func auditEvent(actor *domain.User, action, entity, entityID string) domain.AuditEvent {
	return domain.AuditEvent{
		ID:            uuid.NewString(),
		ActorID:       actor.ID,
		ActorUsername: actor.Username,
		ActorRole:     actor.Role,
		Action:        action,
		Entity:        entity,
		EntityID:      entityID,
		RecordedAt:    time.Now().UTC(),
	}
}
