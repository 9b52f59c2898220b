package ports

import (
	"context"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// ProfilePatch carries the optional fields of a profile edit. Nil means
// "leave unchanged".
type ProfilePatch struct {
	Username *string
	Email    *string
}

// UserRepository defines persistence for user accounts. Create and
// UpdateProfile surface uniqueness violations on email/username as
// domain.ErrUserExists; uniqueness itself is enforced by the store's
// indexes, not by any application-level pre-check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) error
	Delete(ctx context.Context, id string) error
}
