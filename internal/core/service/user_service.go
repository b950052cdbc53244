package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// UserService implements identity administration on top of the user
// repository.
type UserService struct {
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, log: log}
}

func (s *UserService) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.users.List(ctx, role)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies a profile update. The route is open to any authenticated
// caller, so ownership is enforced here: a non-admin may only update their
// own record. The role policy stays a pure predicate; ownership is a
// separate check layered on it.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, upd ports.UserUpdate) (*domain.User, error) {
	if actor.ID != id && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "user.update", "user", id))
	s.log.Info().Str("user_id", id).Str("actor", actor.Username).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(auditEvent(actor, "user.delete", "user", id))
	s.log.Info().Str("user_id", id).Str("actor", actor.Username).Msg("user deleted")
	return nil
}
