package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"devconnector/internal/middleware"
	"devconnector/internal/service"
)

// PostHandler handles post endpoints. Every route requires authentication.
type PostHandler struct {
	posts service.PostService
	log   *zap.Logger
}

// NewPostHandler creates a new post handler.
func NewPostHandler(posts service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{posts: posts, log: log}
}

// TextRequest is the body of a new post or comment.
type TextRequest struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body TextRequest true "Post text"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ValidationResponse
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req TextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, h.log, err)
	}
	post, err := h.posts.Create(c.Request().Context(), middleware.UserID(c), req.Text)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, post)
}

// List godoc
// @Summary Get all posts, newest first
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Post
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get post by id
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.posts.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Msg: "Post removed"})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {array} model.Like
// @Failure 400 {object} errors.ErrorResponse
// @Router /posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	likes, err := h.posts.Like(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, likes)
}

// Unlike godoc
// @Summary Unlike a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {array} model.Like
// @Failure 400 {object} errors.ErrorResponse
// @Router /posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	likes, err := h.posts.Unlike(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, likes)
}

// Comment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Param request body TextRequest true "Comment text"
// @Success 200 {array} model.Comment
// @Failure 400 {object} errors.ValidationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id} [post]
func (h *PostHandler) Comment(c echo.Context) error {
	var req TextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, h.log, err)
	}
	comments, err := h.posts.Comment(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Text)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Param comment_id path string true "Comment id"
// @Success 200 {array} model.Comment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id}/{comment_id} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	comments, err := h.posts.DeleteComment(c.Request().Context(), middleware.UserID(c), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, comments)
}
