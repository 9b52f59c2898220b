package handler

import (
	"time"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

type createPostRequest struct {
	Title   string `json:"title"   validate:"required,min=5,max=100"`
	Content string `json:"content" validate:"required,min=10"`
}

type updatePostRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=5,max=100"`
	Content *string `json:"content" validate:"omitempty,min=10"`
}

type postResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

type postWithAuthorResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func toPostWithAuthorResponse(p domain.PostWithAuthor) postWithAuthorResponse {
	return postWithAuthorResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt.UTC(),
	}
}

// statusResponse is the success envelope returned by post mutations.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
