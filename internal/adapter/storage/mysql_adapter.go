package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/stockroom/internal/core/domain"
)

// MySQLAdapter is the alternative record store backend, selected when a DSN
// is configured. It implements the same repository ports as SQLiteAdapter.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) Bootstrap(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS inventory (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			quantity INT NOT NULL,
			price DOUBLE NOT NULL,
			seq BIGINT AUTO_INCREMENT,
			UNIQUE KEY (seq)
		)`); err != nil {
		return fmt.Errorf("create inventory table: %w", err)
	}

	if _, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(320) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	return nil
}

func (m *MySQLAdapter) CreateItem(ctx context.Context, item domain.Item) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO inventory (id, name, quantity, price)
		VALUES (?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := m.db.QueryRowContext(ctx, `
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

func (m *MySQLAdapter) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, quantity, price
		FROM inventory ORDER BY seq`)
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

func (m *MySQLAdapter) UpdateItem(ctx context.Context, id string, input domain.ItemInput) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
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

func (m *MySQLAdapter) DeleteItem(ctx context.Context, id string) (bool, error) {
	result, err := m.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (m *MySQLAdapter) CreateUser(ctx context.Context, user domain.User) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password)
		VALUES (?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := m.db.QueryRowContext(ctx, `
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
