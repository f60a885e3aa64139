package port

import (
	"context"

	"github.com/rl1809/stockroom/internal/core/domain"
)

type InventoryRepository interface {
	// CreateItem persists a new item under the given id
	CreateItem(ctx context.Context, item domain.Item) error

	// GetItem retrieves an item by id, nil when no row matches
	GetItem(ctx context.Context, id string) (*domain.Item, error)

	// ListItems returns every item in insertion order
	ListItems(ctx context.Context) ([]domain.Item, error)

	// UpdateItem overwrites the editable fields, reporting whether a row matched
	UpdateItem(ctx context.Context, id string, input domain.ItemInput) (bool, error)

	// DeleteItem removes the item, reporting whether a row matched
	DeleteItem(ctx context.Context, id string) (bool, error)
}
