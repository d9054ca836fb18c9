package ports

import "github.com/khulna-traveller/travel-api/internal/core/domain"

// TokenCodec signs and verifies session credentials. Both operations are pure
// functions of their inputs plus the wall clock; nothing is persisted.
type TokenCodec interface {
	Issue(email string) (string, error)
	// Verify returns domain.ErrTokenExpired for an expired token and
	// domain.ErrTokenInvalid for any other verification failure.
	Verify(token string) (*domain.SessionClaims, error)
}
