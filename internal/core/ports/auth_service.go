package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// RegisterInput carries everything needed to create an identity. Active
// defaults to true when nil.
type RegisterInput struct {
	Username string
	Email    string
	Name     string
	Role     domain.Role
	Password string
	Phone    string
	Address  string
	Photo    string
	Active   *bool
}

// AuthService is the authentication core: credential verification, token
// issuance, and per-request identity resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Login verifies the credential pair and returns a signed bearer token
	// plus the public identity. Unknown username and wrong password both
	// yield domain.ErrInvalidCredentials; an inactive account yields
	// domain.ErrAccountInactive.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// Authenticate resolves a bearer token into the current identity. The
	// role and active flag are re-read from the store on every call so a
	// role change or deactivation takes effect immediately, token expiry
	// notwithstanding.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
