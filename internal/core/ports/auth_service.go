package ports

import (
	"context"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

// AuthService implements the identity provider surface: account registration
// and login. The issued token carries the account email as the identity
// passed to every other operation.
type AuthService interface {
	Register(ctx context.Context, email, password, name, phone string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
