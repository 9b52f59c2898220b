package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iGEORGE17/blog-api/internal/api/metrics"
	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

// PostHandler handles blog post endpoints.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create publishes a new post authored by the authenticated user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Security     BearerAuth
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), identity, ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List returns every post joined with its author's username.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  postWithAuthorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]postWithAuthorResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostWithAuthorResponse(posts[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single post by id, joined with its author's username.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object}  postWithAuthorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPostWithAuthorResponse(*post))
}

// Mine returns the authenticated user's own posts.
//
// @Summary      List my posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  postResponse
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /posts/me [get]
func (h *PostHandler) Mine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	posts, err := h.postService.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Update modifies a post. Only the author or an admin may update it.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  statusResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /posts/{id} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postService.Update(c.Request().Context(), identity, c.Param("id"), ports.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("post").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Post updated successfully"})
}

// Delete removes a post. Only the author or an admin may delete it.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("post").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Post deleted successfully"})
}
