package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// UserUpdate carries the profile fields a generic user update may change.
// The password hash and the role are deliberately absent: secret rotation is
// a distinct operation and the role is immutable after registration.
type UserUpdate struct {
	Username *string
	Email    *string
	Name     *string
	Phone    *string
	Address  *string
	Photo    *string
	Active   *bool
}

// UserRepository persists identities in the users collection.
//
// Every read except FindCredentialsByUsername projects the password hash out,
// so client-facing paths can never see it. Username and email uniqueness is
// enforced by unique indexes; Insert and Update translate index violations
// into domain.ErrUsernameTaken / domain.ErrEmailTaken.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error

	// FindCredentialsByUsername returns the full record including the
	// password hash. Login is its only caller.
	FindCredentialsByUsername(ctx context.Context, username string) (*domain.User, error)

	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// List returns all users, optionally filtered by role when role is
	// non-empty.
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)

	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
