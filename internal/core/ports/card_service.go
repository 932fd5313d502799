package ports

import (
	"context"
	"time"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

// CardView is the card as the API presents it: the owner reference expanded
// to the public user, likes kept as plain user ids.
type CardView struct {
	ID        string
	Name      string
	Link      string
	Owner     *domain.User
	Likes     []string
	CreatedAt time.Time
}

// CardService defines card use-cases. Every mutation takes the caller id
// attached by the auth middleware; ownership and like-set semantics live here.
type CardService interface {
	List(ctx context.Context) ([]CardView, error)
	Create(ctx context.Context, ownerID, name, link string) (*CardView, error)
	// Delete removes the card only when callerID owns it; otherwise
	// domain.ErrForbidden and the card is untouched. Returns the deleted card.
	Delete(ctx context.Context, cardID, callerID string) (*CardView, error)
	Like(ctx context.Context, cardID, callerID string) (*CardView, error)
	Unlike(ctx context.Context, cardID, callerID string) (*CardView, error)
}
