package handler

import "time"

// --- Request / Response types ---
//
// Field names follow the client contract: `_id` and `createdAt` as the
// single-page app expects them.

type signupRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=30"`
	About    string `json:"about"    validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar"   validate:"omitempty,url"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type updateProfileRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=30"`
	About *string `json:"about" validate:"omitempty,min=2,max=30"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// userResponse is the public user view: every field except the password hash.
type userResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type userListResponse struct {
	Data []userResponse `json:"data"`
}
