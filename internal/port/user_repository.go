package port

import (
	"context"

	"github.com/rl1809/stockroom/internal/core/domain"
)

type UserRepository interface {
	// CreateUser persists a new account record
	CreateUser(ctx context.Context, user domain.User) error

	// GetUserByEmail retrieves an account by unique email, nil when no row matches
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
