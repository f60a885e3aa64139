// Package client is the Go consumer of the stockroom HTTP surface. It holds
// the API gateway plus the inventory and user state containers that mediate
// every mutation through an optimistic-update, rollback-on-failure protocol.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Item mirrors the wire shape of an inventory record.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ItemInput carries the user-editable fields of an item.
type ItemInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Identity is the server-confirmed view of a signed-in user.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddItemResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type SignInResult struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

// Every gateway call fails with a fixed, operation-specific error whenever
// the response is outside the success range or the transport fails. Error
// body detail is never surfaced to callers.
var (
	ErrFetchItems = errors.New("failed to fetch inventory items")
	ErrFetchItem  = errors.New("failed to fetch inventory item")
	ErrAddItem    = errors.New("failed to add inventory item")
	ErrUpdateItem = errors.New("failed to update inventory item")
	ErrDeleteItem = errors.New("failed to delete inventory item")
	ErrSignUp     = errors.New("failed to sign up")
	ErrSignIn     = errors.New("failed to sign in")
)

// InventoryGateway is the slice of the gateway the inventory container uses.
type InventoryGateway interface {
	FetchItems(ctx context.Context) ([]Item, error)
	FetchItem(ctx context.Context, id string) (Item, error)
	AddItem(ctx context.Context, input ItemInput) (AddItemResult, error)
	UpdateItem(ctx context.Context, id string, input ItemInput) (MessageResult, error)
	DeleteItem(ctx context.Context, id string) (MessageResult, error)
}

// AuthGateway is the slice of the gateway the user container uses.
type AuthGateway interface {
	SignUp(ctx context.Context, name, email, password string) (MessageResult, error)
	SignIn(ctx context.Context, email, password string) (SignInResult, error)
}

// Gateway issues one HTTP request per resource operation.
type Gateway struct {
	baseURL string
	httpc   *http.Client
}

func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *Gateway) FetchItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := g.do(ctx, http.MethodGet, "/api/get-all-inventory", nil, &items); err != nil {
		return nil, ErrFetchItems
	}
	return items, nil
}

func (g *Gateway) FetchItem(ctx context.Context, id string) (Item, error) {
	var item Item
	if err := g.do(ctx, http.MethodGet, "/api/get-inventory/"+url.PathEscape(id), nil, &item); err != nil {
		return Item{}, ErrFetchItem
	}
	return item, nil
}

func (g *Gateway) AddItem(ctx context.Context, input ItemInput) (AddItemResult, error) {
	var result AddItemResult
	if err := g.do(ctx, http.MethodPost, "/api/add-inventory", input, &result); err != nil {
		return AddItemResult{}, ErrAddItem
	}
	return result, nil
}

func (g *Gateway) UpdateItem(ctx context.Context, id string, input ItemInput) (MessageResult, error) {
	var result MessageResult
	if err := g.do(ctx, http.MethodPut, "/api/update-inventory/"+url.PathEscape(id), input, &result); err != nil {
		return MessageResult{}, ErrUpdateItem
	}
	return result, nil
}

func (g *Gateway) DeleteItem(ctx context.Context, id string) (MessageResult, error) {
	var result MessageResult
	if err := g.do(ctx, http.MethodDelete, "/api/delete-inventory/"+url.PathEscape(id), nil, &result); err != nil {
		return MessageResult{}, ErrDeleteItem
	}
	return result, nil
}

func (g *Gateway) SignUp(ctx context.Context, name, email, password string) (MessageResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var result MessageResult
	if err := g.do(ctx, http.MethodPost, "/api/signup", body, &result); err != nil {
		return MessageResult{}, ErrSignUp
	}
	return result, nil
}

func (g *Gateway) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result SignInResult
	if err := g.do(ctx, http.MethodPost, "/api/signin", body, &result); err != nil {
		return SignInResult{}, ErrSignIn
	}
	return result, nil
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
