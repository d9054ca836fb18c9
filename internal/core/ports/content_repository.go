package ports

import (
	"context"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

// ContentRepository defines the five primitive store operations every content
// collection needs. FindByID returns (nil, nil) for an unknown id — absence
// is not an error at this layer. Malformed ids yield domain.ErrInvalidID.
type ContentRepository interface {
	Insert(ctx context.Context, doc domain.Document) (string, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	FindAll(ctx context.Context) ([]domain.Document, error)
	// Upsert merges doc into the document at id, creating it when absent.
	Upsert(ctx context.Context, id string, doc domain.Document) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
