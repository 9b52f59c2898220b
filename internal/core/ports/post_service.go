package ports

import (
	"context"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// CreatePostInput carries the data for a new post. The author is always the
// authenticated caller; no author id is accepted from the client.
type CreatePostInput struct {
	Title   string
	Content string
}

// PostService defines the blog-post use cases. Reads are public; mutations
// go through the ownership policy after loading the target post.
type PostService interface {
	Create(ctx context.Context, identity domain.Identity, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]domain.PostWithAuthor, error)
	Get(ctx context.Context, id string) (*domain.PostWithAuthor, error)
	ListMine(ctx context.Context, identity domain.Identity) ([]domain.Post, error)
	Update(ctx context.Context, identity domain.Identity, id string, patch PostPatch) error
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
