package ports

import (
	"context"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

// ProfileUpdate carries the optional PATCH /users/me fields. A nil pointer
// means "leave unchanged".
type ProfileUpdate struct {
	Name  *string
	About *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users for the given ids, keyed by id. Missing ids
	// are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// FindByEmail is the credential lookup: unlike the other reads it includes
	// the password hash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id string, avatar string) (*domain.User, error)
}
