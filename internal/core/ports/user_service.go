package ports

import (
	"context"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// UserService defines profile and account-administration use cases.
// ListUsers and DeleteUser consult the access policy before any repository
// call, so a denied request never touches the store.
type UserService interface {
	CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, patch ProfilePatch) error
	ListUsers(ctx context.Context, identity domain.Identity) ([]*domain.User, error)
	DeleteUser(ctx context.Context, identity domain.Identity, targetID string) error
}
