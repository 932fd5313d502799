package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/photoshare/photoshare-api/internal/core/domain"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements registration and login.
type AuthService struct {
	repo       ports.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		About:        input.About,
		Avatar:       input.Avatar,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if user.Name == "" {
		user.Name = domain.DefaultName
	}
	if user.About == "" {
		user.About = domain.DefaultAbout
	}
	if user.Avatar == "" {
		user.Avatar = domain.DefaultAvatar
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and issues a signed token. Both an unknown
// email and a wrong password collapse to ErrInvalidCredentials so the caller
// cannot tell which factor failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(user.ID)
}

func (s *AuthService) generateToken(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	return t.SignedString(s.jwtSecret)
}
