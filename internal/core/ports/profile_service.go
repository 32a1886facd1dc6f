package ports

import (
	"context"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

// ProfileService defines use-case operations on the caller's own profile.
// The email is the authenticated identity supplied by the transport layer.
type ProfileService interface {
	// Update sets name and phone on the account matching email. When no
	// account matches, domain.ErrUserNotFound is returned and nothing is
	// written.
	Update(ctx context.Context, email, name, phone string) (*domain.User, error)
	Get(ctx context.Context, email string) (*domain.User, error)
}
