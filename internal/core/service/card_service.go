package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/photoshare/photoshare-api/internal/core/domain"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

// CardService implements card use-cases: listing with expanded owners,
// creation, ownership-checked deletion, and idempotent like/unlike.
type CardService struct {
	cards  ports.CardRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewCardService(cards ports.CardRepository, users ports.UserRepository, logger zerolog.Logger) *CardService {
	return &CardService{cards: cards, users: users, logger: logger}
}

func (s *CardService) List(ctx context.Context) ([]ports.CardView, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]string, 0, len(cards))
	seen := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		if _, ok := seen[c.OwnerID]; !ok {
			seen[c.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, c.OwnerID)
		}
	}

	owners, err := s.users.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ports.CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, toCardView(c, owners[c.OwnerID]))
	}
	return views, nil
}

func (s *CardService) Create(ctx context.Context, ownerID, name, link string) (*ports.CardView, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.Create(ctx, &domain.Card{
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []string{},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("card_id", card.ID).Str("owner_id", ownerID).Msg("card created")

	view := toCardView(card, owner)
	return &view, nil
}

// Delete fetches the card, rejects callers that do not own it, and only then
// removes it. The ownership check always precedes the mutation.
func (s *CardService) Delete(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	if err := s.cards.Delete(ctx, cardID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("card_id", cardID).Str("owner_id", callerID).Msg("card deleted")
	return s.expand(ctx, card)
}

func (s *CardService) Like(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
	card, err := s.cards.AddLike(ctx, cardID, callerID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, card)
}

func (s *CardService) Unlike(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
	card, err := s.cards.RemoveLike(ctx, cardID, callerID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, card)
}

func (s *CardService) expand(ctx context.Context, card *domain.Card) (*ports.CardView, error) {
	owner, err := s.users.FindByID(ctx, card.OwnerID)
	if err != nil && err != domain.ErrUserNotFound {
		return nil, err
	}
	view := toCardView(card, owner)
	return &view, nil
}

func toCardView(card *domain.Card, owner *domain.User) ports.CardView {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return ports.CardView{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     owner,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}
