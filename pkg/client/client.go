// Package client is a Go consumer of the photoshare API. It owns the client
// side of the session: the token received at login is persisted through a
// TokenStore, attached as a bearer header on every subsequent call, and
// discarded again on logout. Expiry is handled lazily — the server answers
// 401 and the caller drops back to the anonymous state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// User is the public user view returned by the API.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Card is a posted photo with its owner expanded.
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     User      `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterInput carries the signup payload; the zero values of the optional
// fields let the server apply its profile defaults.
type RegisterInput struct {
	Name     string `json:"name,omitempty"`
	About    string `json:"about,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfilePatch carries the PATCH /users/me fields; nil means unchanged.
type ProfilePatch struct {
	Name  *string `json:"name,omitempty"`
	About *string `json:"about,omitempty"`
}

// APIError is any non-2xx response, carrying the server's message envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the photoshare API.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	token   string
}

// New creates a Client for the API at baseURL. A nil store keeps the session
// in memory only.
func New(baseURL string, store TokenStore) (*Client, error) {
	if store == nil {
		store = &memoryTokenStore{}
	}
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		token:   token,
	}, nil
}

// HasSession reports whether a token is held. The token may still be expired;
// call Me to validate it against the server.
func (c *Client) HasSession() bool {
	return c.token != ""
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/signup", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and persists the issued token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/signin", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return c.store.Save(resp.Token)
}

// Logout discards the stored token. Nothing happens server-side; the token
// simply stops being presented and eventually expires.
func (c *Client) Logout() error {
	c.token = ""
	return c.store.Clear()
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var resp struct {
		Data []User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/users/me", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateAvatar(ctx context.Context, avatar string) (*User, error) {
	body := map[string]string{"avatar": avatar}
	var user User
	if err := c.do(ctx, http.MethodPatch, "/users/me/avatar", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Cards(ctx context.Context) ([]Card, error) {
	var resp struct {
		Data []Card `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/cards", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateCard(ctx context.Context, name, link string) (*Card, error) {
	body := map[string]string{"name": name, "link": link}
	var card Card
	if err := c.do(ctx, http.MethodPost, "/cards", body, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) DeleteCard(ctx context.Context, id string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodDelete, "/cards/"+id, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) LikeCard(ctx context.Context, id string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodPut, "/cards/"+id+"/likes", nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) UnlikeCard(ctx context.Context, id string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodDelete, "/cards/"+id+"/likes", nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
