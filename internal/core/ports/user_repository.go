package ports

import (
	"context"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

// UserRepository defines persistence operations for marketplace accounts.
type UserRepository interface {
	// Create persists a new user and returns the store-assigned id.
	// A duplicate email is refused with domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail resolves an account by email equality. At most one match
	// is expected (unique index); domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}
