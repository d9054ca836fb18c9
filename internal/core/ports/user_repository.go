package ports

import (
	"context"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

// UserRepository defines persistence operations on the users collection.
// Lookups return domain.ErrUserNotFound when no document matches; id-taking
// methods return domain.ErrInvalidID when the id cannot be parsed.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Upsert merges fields into the document at id, creating it when absent.
	Upsert(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error)
	SetRole(ctx context.Context, id, role string) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
