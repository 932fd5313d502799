package handler

import (
	"github.com/photoshare/photoshare-api/internal/core/domain"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	if u == nil {
		return userResponse{}
	}
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		About:     u.About,
		Avatar:    u.Avatar,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toUserListResponse(users []*domain.User) userListResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return userListResponse{Data: out}
}

func toCardResponse(v *ports.CardView) cardResponse {
	return cardResponse{
		ID:        v.ID,
		Name:      v.Name,
		Link:      v.Link,
		Owner:     toUserResponse(v.Owner),
		Likes:     v.Likes,
		CreatedAt: v.CreatedAt,
	}
}

func toCardListResponse(views []ports.CardView) cardListResponse {
	out := make([]cardResponse, 0, len(views))
	for i := range views {
		out = append(out, toCardResponse(&views[i]))
	}
	return cardListResponse{Data: out}
}
