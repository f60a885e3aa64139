package client

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNotSignedIn is returned when a mutation requiring an authenticated user
// is attempted without one. No network call is made in that case.
var ErrNotSignedIn = errors.New("user must be signed in")

// InventoryStore is the single source of truth for the client-visible
// inventory collection and the status of pending operations.
//
// Mutations are optimistic: the in-memory collection is changed before the
// network call resolves, and restored from a snapshot when the call fails.
// Only one mutation can be in flight at a time; a guarded call arriving
// while one is pending is silently dropped, because only one snapshot can
// be meaningfully restored.
type InventoryStore struct {
	mu      sync.Mutex
	gateway InventoryGateway
	session *UserStore

	items       []Item
	currentItem *Item
	loading     bool
	mutating    bool
	lastError   string
}

func NewInventoryStore(gateway InventoryGateway, session *UserStore) *InventoryStore {
	return &InventoryStore{
		gateway: gateway,
		session: session,
		items:   []Item{},
	}
}

// FetchAll replaces the collection with the server's full list. A fetch
// already in flight makes this a no-op. A successful fetch is a full
// replace, never a merge.
func (s *InventoryStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	items, err := s.gateway.FetchItems(ctx)
	if err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// AddItem sends the candidate to the server and, on success, appends it to
// the collection under the server-assigned id. The appended entry is built
// from the candidate, not re-fetched: if the server altered any field, the
// local copy drifts until the next FetchAll.
func (s *InventoryStore) AddItem(ctx context.Context, input ItemInput) error {
	s.mu.Lock()
	if s.mutating {
		s.mu.Unlock()
		return nil
	}
	s.mutating = true
	s.mu.Unlock()
	defer s.resetMutating()

	result, err := s.gateway.AddItem(ctx, input)
	if err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	s.items = append(s.items, Item{
		ID:       result.ID,
		Name:     input.Name,
		Quantity: input.Quantity,
		Price:    input.Price,
	})
	s.mu.Unlock()
	return nil
}

// UpdateItem patches the matching entry in place before the network call
// resolves, and rolls the whole collection back if the call fails. Requires
// a signed-in user.
func (s *InventoryStore) UpdateItem(ctx context.Context, id string, input ItemInput) error {
	if s.session.Current() == nil {
		return ErrNotSignedIn
	}

	s.mu.Lock()
	if s.mutating {
		s.mu.Unlock()
		return nil
	}
	s.mutating = true

	previous := slices.Clone(s.items)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name = input.Name
			s.items[i].Quantity = input.Quantity
			s.items[i].Price = input.Price
		}
	}
	s.mu.Unlock()
	defer s.resetMutating()

	if _, err := s.gateway.UpdateItem(ctx, id, input); err != nil {
		s.mu.Lock()
		s.items = previous
		s.mu.Unlock()
		s.recordError(err)
		return err
	}

	// The optimistic state stands; the server response is not reconciled.
	return nil
}

// DeleteItem removes the matching entry before the network call resolves,
// restoring the snapshot if the call fails. Requires a signed-in user.
func (s *InventoryStore) DeleteItem(ctx context.Context, id string) error {
	if s.session.Current() == nil {
		return ErrNotSignedIn
	}

	s.mu.Lock()
	if s.mutating {
		s.mu.Unlock()
		return nil
	}
	s.mutating = true

	previous := slices.Clone(s.items)
	s.items = slices.DeleteFunc(s.items, func(item Item) bool {
		return item.ID == id
	})
	s.mu.Unlock()
	defer s.resetMutating()

	if _, err := s.gateway.DeleteItem(ctx, id); err != nil {
		s.mu.Lock()
		s.items = previous
		s.mu.Unlock()
		s.recordError(err)
		return err
	}

	return nil
}

// FetchItemByID fetches a single item into a slot independent of the
// collection and returns it.
func (s *InventoryStore) FetchItemByID(ctx context.Context, id string) (Item, error) {
	item, err := s.gateway.FetchItem(ctx, id)
	if err != nil {
		s.recordError(err)
		return Item{}, err
	}

	s.mu.Lock()
	s.currentItem = &item
	s.mu.Unlock()
	return item, nil
}

// Items returns a copy of the collection in server return order.
func (s *InventoryStore) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// CurrentItem returns the single-item slot, nil when nothing was fetched.
func (s *InventoryStore) CurrentItem() *Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentItem == nil {
		return nil
	}
	item := *s.currentItem
	return &item
}

func (s *InventoryStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *InventoryStore) IsMutating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutating
}

// LastError returns the recorded text of the most recent failure, empty when
// none occurred.
func (s *InventoryStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *InventoryStore) resetMutating() {
	s.mu.Lock()
	s.mutating = false
	s.mu.Unlock()
}

func (s *InventoryStore) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}
