package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rl1809/stockroom/internal/core/domain"
	"github.com/rl1809/stockroom/internal/port"
)

var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrInvalidItem  = errors.New("invalid item input")
)

type InventoryService struct {
	repo port.InventoryRepository
}

func NewInventoryService(repo port.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// AddItem validates the input, assigns a fresh id and persists the item.
// Ids are opaque strings and never reused, so a deleted item's id stays dead.
func (s *InventoryService) AddItem(ctx context.Context, input domain.ItemInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	item := domain.Item{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Quantity: input.Quantity,
		Price:    input.Price,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return "", fmt.Errorf("create item: %w", err)
	}

	return item.ID, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (domain.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return domain.Item{}, ErrItemNotFound
	}

	return *item, nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, input domain.ItemInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	matched, err := s.repo.UpdateItem(ctx, id, input)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if !matched {
		return ErrItemNotFound
	}

	return nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	matched, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if !matched {
		return ErrItemNotFound
	}

	return nil
}

func validateInput(input domain.ItemInput) error {
	if input.Name == "" || input.Quantity < 0 || input.Price < 0 {
		return ErrInvalidItem
	}
	return nil
}
