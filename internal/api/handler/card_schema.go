package handler

import "time"

type createCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// cardResponse always carries the expanded public owner; likes stay user ids.
type cardResponse struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Link      string       `json:"link"`
	Owner     userResponse `json:"owner"`
	Likes     []string     `json:"likes"`
	CreatedAt time.Time    `json:"createdAt"`
}

type cardListResponse struct {
	Data []cardResponse `json:"data"`
}
