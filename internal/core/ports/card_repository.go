package ports

import (
	"context"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

// CardRepository defines persistence operations for cards.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	// List returns all cards, newest first.
	List(ctx context.Context) ([]*domain.Card, error)
	Delete(ctx context.Context, id string) error
	// AddLike atomically adds userID to the card's like set and returns the
	// updated card. Adding an already-present id is a no-op on the set.
	AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
	// RemoveLike atomically removes userID from the like set; removing an
	// absent id is a no-op.
	RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}
