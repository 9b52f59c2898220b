package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

// PostService implements blog-post use cases. Mutations load the target
// first and run the ownership policy before writing.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create stores a new post authored by the caller. The author id comes from
// the authenticated identity only.
func (s *PostService) Create(ctx context.Context, identity domain.Identity, input ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		AuthorID:  identity.UserID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", identity.UserID).Msg("post creation failed")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", identity.UserID).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.PostWithAuthor, error) {
	return s.repo.ListWithAuthors(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	return s.repo.FindWithAuthor(ctx, id)
}

func (s *PostService) ListMine(ctx context.Context, identity domain.Identity) ([]domain.Post, error) {
	return s.repo.ListByAuthor(ctx, identity.UserID)
}

// Update patches a post after the ownership check. An empty patch is a
// no-op: the post must still exist, but updated_at does not advance.
func (s *PostService) Update(ctx context.Context, identity domain.Identity, id string, patch ports.PostPatch) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CanMutatePost(identity, post.AuthorID); err != nil {
		return err
	}
	if patch.Title == nil && patch.Content == nil {
		return nil
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *PostService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CanMutatePost(identity, post.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Str("user_id", identity.UserID).Msg("post deleted")
	return nil
}
