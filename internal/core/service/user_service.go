package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

// UserService implements account management on top of the users collection.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register inserts the user unless the email is already on file. The
// uniqueness probe runs before the insert so a collision never writes.
func (s *UserService) Register(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	if user.Role == "" {
		user.Role = domain.RoleMember
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("user insert failed")
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("email", user.Email).Msg("user registered")
	return &domain.InsertResult{InsertedID: id}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateProfile merges fields into the user document at id, creating it when
// absent. The role field is not writable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	delete(fields, "_id")
	delete(fields, "role")
	return s.repo.Upsert(ctx, id, fields)
}

func (s *UserService) Promote(ctx context.Context, id string) (*domain.UpdateResult, error) {
	res, err := s.repo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("user promoted to admin")
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

// IsAdmin resolves the role behind email. Unknown accounts are non-admins;
// only a storage failure surfaces as an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}
