package handler

import (
	"context"

	"github.com/photoshare/photoshare-api/internal/core/domain"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	listFn          func(ctx context.Context) ([]*domain.User, error)
	getFn           func(ctx context.Context, id string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error)
	updateAvatarFn  func(ctx context.Context, userID, avatar string) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, update)
}

func (s *stubUserService) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	return s.updateAvatarFn(ctx, userID, avatar)
}

type stubCardService struct {
	listFn   func(ctx context.Context) ([]ports.CardView, error)
	createFn func(ctx context.Context, ownerID, name, link string) (*ports.CardView, error)
	deleteFn func(ctx context.Context, cardID, callerID string) (*ports.CardView, error)
	likeFn   func(ctx context.Context, cardID, callerID string) (*ports.CardView, error)
	unlikeFn func(ctx context.Context, cardID, callerID string) (*ports.CardView, error)
}

func (s *stubCardService) List(ctx context.Context) ([]ports.CardView, error) {
	return s.listFn(ctx)
}

func (s *stubCardService) Create(ctx context.Context, ownerID, name, link string) (*ports.CardView, error) {
	return s.createFn(ctx, ownerID, name, link)
}

func (s *stubCardService) Delete(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
	return s.deleteFn(ctx, cardID, callerID)
}

func (s *stubCardService) Like(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
	return s.likeFn(ctx, cardID, callerID)
}

func (s *stubCardService) Unlike(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
	return s.unlikeFn(ctx, cardID, callerID)
}
