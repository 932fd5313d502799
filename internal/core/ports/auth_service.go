package ports

import (
	"context"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

// RegisterInput carries the signup payload. Name, About and Avatar are
// optional; empty strings mean "apply the profile default".
type RegisterInput struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	// Unknown email and wrong password are indistinguishable: both return
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
