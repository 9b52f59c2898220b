package ports

import (
	"context"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// PostPatch carries the optional fields of a post update.
type PostPatch struct {
	Title   *string
	Content *string
}

// PostRepository defines persistence for blog posts. The *WithAuthor reads
// resolve author_id to the author's username via the store's join facility.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error)
	ListWithAuthors(ctx context.Context) ([]domain.PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	// Update applies patch and advances updated_at.
	Update(ctx context.Context, id string, patch PostPatch) error
	Delete(ctx context.Context, id string) error
}
