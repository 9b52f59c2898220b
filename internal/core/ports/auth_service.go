package ports

import (
	"context"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// AuthService implements registration and login. Register always assigns the
// "user" role; there is no way for a caller to self-assign another role.
// Both operations return a freshly issued token alongside the user.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
