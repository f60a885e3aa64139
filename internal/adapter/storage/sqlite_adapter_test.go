package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/rl1809/stockroom/internal/core/domain"
)

func getSQLiteAdapter(t *testing.T) *SQLiteAdapter {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	adapter := NewSQLiteAdapter(db)
	if err := adapter.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return adapter
}

func TestSQLiteCreateAndGetItem(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	item := domain.Item{ID: "item-1", Name: "Widget", Quantity: 5, Price: 10.5}
	if err := adapter.CreateItem(ctx, item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	got, err := adapter.GetItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if *got != item {
		t.Errorf("expected %+v, got %+v", item, *got)
	}
}

func TestSQLiteGetItem_NotFound(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	got, err := adapter.GetItem(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent item")
	}
}

func TestSQLiteListItems_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	ids := []string{"c", "a", "b"}
	for i, id := range ids {
		item := domain.Item{ID: id, Name: "Item " + id, Quantity: i, Price: float64(i)}
		if err := adapter.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	items, err := adapter.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, id := range ids {
		if items[i].ID != id {
			t.Errorf("position %d: expected id %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestSQLiteListItems_Empty(t *testing.T) {
	adapter := getSQLiteAdapter(t)

	items, err := adapter.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if items == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected 0 items, got %d", len(items))
	}
}

func TestSQLiteUpdateItem(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	if err := adapter.CreateItem(ctx, domain.Item{ID: "item-1", Name: "Widget", Quantity: 5, Price: 10}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	matched, err := adapter.UpdateItem(ctx, "item-1", domain.ItemInput{Name: "Widget v2", Quantity: 7, Price: 12.5})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if !matched {
		t.Fatal("expected update to match a row")
	}

	// Verify
	got, err := adapter.GetItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got.Name != "Widget v2" || got.Quantity != 7 || got.Price != 12.5 {
		t.Errorf("unexpected item after update: %+v", *got)
	}
}

func TestSQLiteUpdateItem_NotFound(t *testing.T) {
	adapter := getSQLiteAdapter(t)

	matched, err := adapter.UpdateItem(context.Background(), "nonexistent", domain.ItemInput{Name: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Error("expected no match for nonexistent item")
	}
}

func TestSQLiteDeleteItem(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	if err := adapter.CreateItem(ctx, domain.Item{ID: "item-1", Name: "Widget", Quantity: 1, Price: 1}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	matched, err := adapter.DeleteItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if !matched {
		t.Fatal("expected delete to match a row")
	}

	// Verify row is gone and a second delete matches nothing
	got, _ := adapter.GetItem(ctx, "item-1")
	if got != nil {
		t.Error("expected item to be deleted")
	}
	matched, err = adapter.DeleteItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if matched {
		t.Error("expected second delete to match nothing")
	}
}

func TestSQLiteCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	user := domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := adapter.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := adapter.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if *got != user {
		t.Errorf("expected %+v, got %+v", user, *got)
	}
}

func TestSQLiteCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	adapter := getSQLiteAdapter(t)

	user := domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := adapter.CreateUser(ctx, user); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	user.ID = "user-2"
	if err := adapter.CreateUser(ctx, user); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestSQLiteGetUserByEmail_NotFound(t *testing.T) {
	adapter := getSQLiteAdapter(t)

	got, err := adapter.GetUserByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown email")
	}
}
