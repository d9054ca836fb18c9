package ports

import (
	"context"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

// UserService defines the account use cases.
type UserService interface {
	// Register inserts a new user after checking email uniqueness. A taken
	// email yields domain.ErrEmailTaken and no insert.
	Register(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateProfile field-merges into the user document, creating it when
	// the id is absent (upsert).
	UpdateProfile(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error)
	// Promote sets the user's role to admin. Distinct from UpdateProfile on
	// purpose: it is the only role mutation the API exposes.
	Promote(ctx context.Context, id string) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
	// IsAdmin reports whether the account behind email holds the admin role.
	// An unknown email is simply not an admin, not an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
}
