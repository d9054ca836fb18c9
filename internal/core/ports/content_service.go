package ports

import (
	"context"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

// ContentService applies the uniform lifecycle every content collection
// shares: create, read (single or all), full-document upsert update, and
// delete-by-id.
type ContentService interface {
	Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	Update(ctx context.Context, id string, doc domain.Document) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
