package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenCodec signs and verifies session tokens with a shared HS256 secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewTokenCodec builds a codec. ttl <= 0 falls back to 24h. An empty secret
// is a configuration error the caller must treat as fatal at startup.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a signed token for email, valid for the codec's ttl.
func (c *TokenCodec) Issue(email string) (string, error) {
	now := c.now().UTC()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify recomputes the signature and checks expiry. The check is stateless:
// verifying a token twice gives the same answer for the same wall clock.
func (c *TokenCodec) Verify(token string) (*domain.SessionClaims, error) {
	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid || claims.Email == "" {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.SessionClaims{Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
