package domain

import (
	"errors"
	"time"
)

// Profile defaults applied at registration when the optional fields are omitted.
const (
	DefaultName   = "New User"
	DefaultAbout  = "Photography enthusiast"
	DefaultAvatar = "https://storage.photoshare.app/avatars/default.png"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidID          = errors.New("malformed identifier")
)

// User models a registered account. PasswordHash never appears in responses;
// the repository only surfaces it on the credential lookup used by login.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	About        string    `json:"about"`
	Avatar       string    `json:"avatar"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
