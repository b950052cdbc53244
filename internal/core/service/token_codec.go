package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edusuite/school-system/internal/core/domain"
)

// TokenLeeway is the clock-skew tolerance applied to the expiry and
// issued-at instants during validation.
const TokenLeeway = 30 * time.Second

const defaultTokenTTL = 24 * time.Hour

// Claims is the signed claim set carried by a bearer token. The subject is
// the username. Authorization attributes are deliberately absent: the token
// proves who authenticated, while role and active status are re-read from
// the store on every request.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec signs and validates bearer tokens with a process-wide HMAC-SHA256
// key, loaded once at startup and read-only afterwards.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec issuing tokens valid for ttl. A non-positive
// ttl falls back to 24 hours.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token whose subject is username, expiring ttl from
// now.
func (c *TokenCodec) Issue(username string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Validate parses and verifies a token string. Every failure mode (bad
// signature, malformed payload, expiry in the past, missing subject) comes
// back as domain.ErrInvalidToken; callers branch on the error, never on a
// partially decoded claim set.
func (c *TokenCodec) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(TokenLeeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
