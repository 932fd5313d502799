package ports

import (
	"context"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

// UserService defines profile use-cases.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error)
}
