package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

// ContentService applies the shared document lifecycle to one collection.
// The same implementation backs banners, plans, team members, and gallery
// items; only the repository (and the name used for logging) differs.
type ContentService struct {
	name   string
	repo   ports.ContentRepository
	logger zerolog.Logger
}

func NewContentService(name string, repo ports.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{name: name, repo: repo, logger: logger}
}

// Name reports which collection this service fronts.
func (s *ContentService) Name() string { return s.name }

func (s *ContentService) Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	delete(doc, "_id")
	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.logger.Error().Err(err).Str("collection", s.name).Msg("insert failed")
		return nil, err
	}
	s.logger.Info().Str("collection", s.name).Str("id", id).Msg("document created")
	return &domain.InsertResult{InsertedID: id}, nil
}

// Get returns (nil, nil) for an unknown id; absence renders as a JSON null.
func (s *ContentService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.FindAll(ctx)
}

// Update field-merges doc into the document at id, creating it when absent.
// Callers rely on update doubling as create.
func (s *ContentService) Update(ctx context.Context, id string, doc domain.Document) (*domain.UpdateResult, error) {
	delete(doc, "_id")
	return s.repo.Upsert(ctx, id, doc)
}

func (s *ContentService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		s.logger.Debug().Str("collection", s.name).Str("id", id).Msg("delete matched nothing")
	}
	return res, nil
}
