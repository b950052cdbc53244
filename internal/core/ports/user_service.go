package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// UserService exposes identity administration. List and Delete are
// admin-gated at the route; Update additionally honors ownership, so a
// user may always update their own record.
type UserService interface {
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
