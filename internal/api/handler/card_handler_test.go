package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photoshare/photoshare-api/internal/core/domain"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

func sampleView(id, ownerID string, likes ...string) *ports.CardView {
	return &ports.CardView{
		ID:        id,
		Name:      "Sunset",
		Link:      "https://img.example.com/sunset.jpg",
		Owner:     &domain.User{ID: ownerID, Name: "Ada"},
		Likes:     likes,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCardHandler_List(t *testing.T) {
	stub := &stubCardService{
		listFn: func(ctx context.Context) ([]ports.CardView, error) {
			return []ports.CardView{*sampleView("c1", "u1"), *sampleView("c2", "u2", "u1")}, nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/cards", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []struct {
			ID    string         `json:"_id"`
			Owner map[string]any `json:"owner"`
			Likes []string       `json:"likes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(resp.Data))
	}
	if resp.Data[0].Owner["_id"] != "u1" {
		t.Fatalf("owner not expanded: %+v", resp.Data[0].Owner)
	}
	if len(resp.Data[1].Likes) != 1 || resp.Data[1].Likes[0] != "u1" {
		t.Fatalf("unexpected likes: %v", resp.Data[1].Likes)
	}
}

func TestCardHandler_Create(t *testing.T) {
	stub := &stubCardService{
		createFn: func(ctx context.Context, ownerID, name, link string) (*ports.CardView, error) {
			if ownerID != "u1" || name != "Sunset" {
				t.Fatalf("unexpected args: %s %s %s", ownerID, name, link)
			}
			return sampleView("c1", ownerID), nil
		},
	}
	h := NewCardHandler(stub)

	body := `{"name":"Sunset","link":"https://img.example.com/sunset.jpg"}`
	c, rec := newTestContext(t, http.MethodPost, "/cards", body)
	c.Set("user_id", "u1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCardHandler_Create_BadLink(t *testing.T) {
	stub := &stubCardService{
		createFn: func(ctx context.Context, ownerID, name, link string) (*ports.CardView, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewCardHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/cards", `{"name":"Sunset","link":"nope"}`)
	c.Set("user_id", "u1")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCardHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubCardService{
		createFn: func(ctx context.Context, ownerID, name, link string) (*ports.CardView, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewCardHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/cards", `{"name":"Sunset","link":"https://img.example.com/s.jpg"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestCardHandler_Delete_ForbiddenPropagates(t *testing.T) {
	stub := &stubCardService{
		deleteFn: func(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
			if cardID != "c1" || callerID != "intruder" {
				t.Fatalf("unexpected args: %s %s", cardID, callerID)
			}
			return nil, domain.ErrForbidden
		},
	}
	h := NewCardHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/cards/c1", "")
	c.Set("user_id", "intruder")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestCardHandler_Delete_ReturnsCard(t *testing.T) {
	stub := &stubCardService{
		deleteFn: func(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
			return sampleView(cardID, callerID), nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/cards/c1", "")
	c.Set("user_id", "u1")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCardHandler_Like(t *testing.T) {
	stub := &stubCardService{
		likeFn: func(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
			return sampleView(cardID, "u2", callerID), nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/cards/c1/likes", "")
	c.Set("user_id", "u1")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Like(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Likes []string `json:"likes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Likes) != 1 || resp.Likes[0] != "u1" {
		t.Fatalf("unexpected likes: %v", resp.Likes)
	}
}

func TestCardHandler_Unlike_NotFoundPropagates(t *testing.T) {
	stub := &stubCardService{
		unlikeFn: func(ctx context.Context, cardID, callerID string) (*ports.CardView, error) {
			return nil, domain.ErrCardNotFound
		},
	}
	h := NewCardHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/cards/ghost/likes", "")
	c.Set("user_id", "u1")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Unlike(c); err != domain.ErrCardNotFound {
		t.Fatalf("expected ErrCardNotFound to propagate, got %v", err)
	}
}
