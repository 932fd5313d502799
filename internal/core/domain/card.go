package domain

import (
	"errors"
	"time"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrForbidden    = errors.New("access forbidden")
)

// Card is a posted photo: an image link with a caption, owned by a user.
// Likes holds user ids; the store guarantees each id appears at most once.
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	OwnerID   string    `json:"-"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// LikedBy reports whether userID is present in the card's like set.
func (c *Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
