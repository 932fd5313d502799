package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/photoshare/photoshare-api/internal/core/domain"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

// UserService implements profile use-cases on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies the non-nil fields to the caller's profile. An empty
// update returns the current profile unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.Name == nil && update.About == nil {
		return s.repo.FindByID(ctx, userID)
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	user, err := s.repo.UpdateAvatar(ctx, userID, avatar)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("avatar updated")
	return user, nil
}
