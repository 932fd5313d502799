package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

type stubCardRepo struct {
	cards  map[string]*domain.Card
	nextID int
}

func newStubCardRepo() *stubCardRepo {
	return &stubCardRepo{cards: make(map[string]*domain.Card)}
}

func cloneCard(c *domain.Card) *domain.Card {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Likes = append([]string(nil), c.Likes...)
	return &clone
}

func (r *stubCardRepo) Create(_ context.Context, card *domain.Card) (*domain.Card, error) {
	r.nextID++
	created := cloneCard(card)
	created.ID = fmt.Sprintf("card-%d", r.nextID)
	r.cards[created.ID] = created
	return cloneCard(created), nil
}

func (r *stubCardRepo) FindByID(_ context.Context, id string) (*domain.Card, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	return cloneCard(c), nil
}

func (r *stubCardRepo) List(_ context.Context) ([]*domain.Card, error) {
	out := make([]*domain.Card, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, cloneCard(c))
	}
	return out, nil
}

func (r *stubCardRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.cards[id]; !ok {
		return domain.ErrCardNotFound
	}
	delete(r.cards, id)
	return nil
}

func (r *stubCardRepo) AddLike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	c, ok := r.cards[cardID]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	if !c.LikedBy(userID) {
		c.Likes = append(c.Likes, userID)
	}
	return cloneCard(c), nil
}

func (r *stubCardRepo) RemoveLike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	c, ok := r.cards[cardID]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	kept := c.Likes[:0]
	for _, id := range c.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	c.Likes = kept
	return cloneCard(c), nil
}

func newCardFixture(t *testing.T) (*CardService, *stubCardRepo, *stubUserRepo, string) {
	t.Helper()
	users := newStubUserRepo()
	cards := newStubCardRepo()
	owner, err := users.Create(context.Background(), &domain.User{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	return NewCardService(cards, users, zerolog.Nop()), cards, users, owner.ID
}

func TestCardService_Create_ExpandsOwner(t *testing.T) {
	svc, _, _, ownerID := newCardFixture(t)

	view, err := svc.Create(context.Background(), ownerID, "sunset", "https://example.com/sunset.jpg")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if view.Owner == nil || view.Owner.ID != ownerID {
		t.Fatalf("expected expanded owner, got %+v", view.Owner)
	}
	if len(view.Likes) != 0 {
		t.Fatalf("expected empty like set, got %v", view.Likes)
	}
	if view.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestCardService_Delete_OwnershipEnforced(t *testing.T) {
	svc, cards, users, ownerID := newCardFixture(t)
	other, err := users.Create(context.Background(), &domain.User{Name: "Mallory", Email: "mallory@example.com"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	view, err := svc.Create(context.Background(), ownerID, "sunset", "https://example.com/sunset.jpg")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Delete(context.Background(), view.ID, other.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := cards.cards[view.ID]; !ok {
		t.Fatalf("card must survive a forbidden delete")
	}

	deleted, err := svc.Delete(context.Background(), view.ID, ownerID)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if deleted.ID != view.ID {
		t.Fatalf("expected deleted card %s, got %s", view.ID, deleted.ID)
	}
	if _, ok := cards.cards[view.ID]; ok {
		t.Fatalf("card must be absent after owner delete")
	}
}

func TestCardService_Delete_NotFound(t *testing.T) {
	svc, _, _, ownerID := newCardFixture(t)

	if _, err := svc.Delete(context.Background(), "missing", ownerID); err != domain.ErrCardNotFound {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestCardService_Like_Idempotent(t *testing.T) {
	svc, _, _, ownerID := newCardFixture(t)

	view, err := svc.Create(context.Background(), ownerID, "sunset", "https://example.com/sunset.jpg")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		view, err = svc.Like(context.Background(), view.ID, ownerID)
		if err != nil {
			t.Fatalf("like %d failed: %v", i, err)
		}
	}
	if len(view.Likes) != 1 || view.Likes[0] != ownerID {
		t.Fatalf("expected exactly one like entry, got %v", view.Likes)
	}
}

func TestCardService_Unlike_NoopWhenNotLiked(t *testing.T) {
	svc, _, _, ownerID := newCardFixture(t)

	view, err := svc.Create(context.Background(), ownerID, "sunset", "https://example.com/sunset.jpg")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	view, err = svc.Unlike(context.Background(), view.ID, ownerID)
	if err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if len(view.Likes) != 0 {
		t.Fatalf("expected unchanged empty like set, got %v", view.Likes)
	}
}

func TestCardService_List_ExpandsOwners(t *testing.T) {
	svc, _, users, ownerID := newCardFixture(t)
	second, err := users.Create(context.Background(), &domain.User{Name: "Grace", Email: "grace@example.com"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Create(context.Background(), ownerID, "sunset", "https://example.com/a.jpg"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), second.ID, "sunrise", "https://example.com/b.jpg"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	views, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(views))
	}
	for _, v := range views {
		if v.Owner == nil || v.Owner.Email == "" {
			t.Fatalf("expected expanded owner on %s", v.ID)
		}
	}
}
