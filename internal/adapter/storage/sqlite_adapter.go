package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/stockroom/internal/core/domain"
)

// SQLiteAdapter is the default record store: a single-file embedded database
// opened with the pure-Go "sqlite" driver.
type SQLiteAdapter struct {
	db *sql.DB
}

func NewSQLiteAdapter(db *sql.DB) *SQLiteAdapter {
	return &SQLiteAdapter{db: db}
}

// Bootstrap creates the two tables when they do not exist yet. There is no
// migration machinery; the schema is fixed.
func (s *SQLiteAdapter) Bootstrap(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS inventory (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price REAL NOT NULL
		)`); err != nil {
		return fmt.Errorf("create inventory table: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	return nil
}

func (s *SQLiteAdapter) CreateItem(ctx context.Context, item domain.Item) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inventory (id, name, quantity, price)
		VALUES (?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *SQLiteAdapter) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, quantity, price
		FROM inventory WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Quantity, &item.Price)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}

	return &item, nil
}

func (s *SQLiteAdapter) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, quantity, price
		FROM inventory ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (s *SQLiteAdapter) UpdateItem(ctx context.Context, id string, input domain.ItemInput) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE inventory
		SET name = ?, quantity = ?, price = ?
		WHERE id = ?`,
		input.Name, input.Quantity, input.Price, id,
	)
	if err != nil {
		return false, fmt.Errorf("update item: %w", err)
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (s *SQLiteAdapter) DeleteItem(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (s *SQLiteAdapter) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password)
		VALUES (?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *SQLiteAdapter) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password
		FROM users WHERE email = ?`, email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}
