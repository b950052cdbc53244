package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// AuthService implements registration, login and per-request identity
// resolution.
type AuthService struct {
	users ports.UserRepository
	codec *TokenCodec
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Register creates a new identity with a bcrypt-hashed secret. Username and
// email uniqueness comes back from the repository as ErrUsernameTaken or
// ErrEmailTaken; the unique indexes are authoritative, so concurrent
// registrations cannot both win.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		Phone:        in.Phone,
		Address:      in.Address,
		Photo:        in.Photo,
		Active:       active,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user registered")
	return withoutHash(user), nil
}

// Login verifies the credential pair and issues a bearer token. An unknown
// username and a wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindCredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, domain.ErrAccountInactive
	}

	token, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return token, withoutHash(user), nil
}

// Authenticate resolves a bearer token into the current identity. The full
// user record, role and active flag included, is re-read from the store on
// every call, so a deactivation or role change takes effect immediately
// rather than when the token expires.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := s.codec.Validate(raw)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		// A token naming a since-deleted user is indistinguishable from a
		// forged one as far as the caller is concerned.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !user.Active {
		return nil, domain.ErrAccountInactive
	}

	return user, nil
}

// withoutHash returns a copy of user safe to hand to callers outside the
// credential path.
func withoutHash(user *domain.User) *domain.User {
	pub := *user
	pub.PasswordHash = ""
	return &pub
}
