package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "devconnector/internal/errors"
	"devconnector/internal/events"
	"devconnector/internal/model"
	"devconnector/internal/repository"
)

// PostService manages posts, likes and comments.
type PostService interface {
	Create(ctx context.Context, userID, text string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Delete(ctx context.Context, userID, id string) error
	Like(ctx context.Context, userID, id string) ([]model.Like, error)
	Unlike(ctx context.Context, userID, id string) ([]model.Like, error)
	Comment(ctx context.Context, userID, id, text string) ([]model.Comment, error)
	DeleteComment(ctx context.Context, userID, id, commentID string) ([]model.Comment, error)
}

type postService struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	events emitter
}

// NewPostService builds a PostService.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, pub events.Publisher, log *zap.Logger) PostService {
	return &postService{
		posts:  posts,
		users:  users,
		events: emitter{pub: pub, log: log},
	}
}

// Create stores a post signed with the author's current name and avatar.
func (s *postService) Create(ctx context.Context, userID, text string) (*model.Post, error) {
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:   userID,
		Text:     text,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
		Date:     now(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.events.emit(ctx, events.PostCreated, userID, map[string]string{"post_id": post.ID})
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post %s: %w", id, err)
	}
	return post, nil
}

// Delete removes a post owned by userID.
func (s *postService) Delete(ctx context.Context, userID, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.ErrNotAuthorized
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

// Like adds userID's like at the front of the list.
func (s *postService) Like(ctx context.Context, userID, id string) ([]model.Like, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(userID) {
		return nil, apperrors.ErrPostAlreadyLiked
	}

	post.Likes = append([]model.Like{{ID: uuid.NewString(), UserID: userID}}, post.Likes...)
	if err := s.save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *postService) Unlike(ctx context.Context, userID, id string) ([]model.Like, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, like := range post.Likes {
		if like.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrPostNotLiked
	}

	post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)
	if err := s.save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Comment adds a comment at the front of the list.
func (s *postService) Comment(ctx context.Context, userID, id, text string) ([]model.Comment, error) {
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		Date:   now(),
	}
	post.Comments = append([]model.Comment{comment}, post.Comments...)
	if err := s.save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes a comment written by userID.
func (s *postService) DeleteComment(ctx context.Context, userID, id, commentID string) ([]model.Comment, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrCommentNotFound
	}
	if post.Comments[idx].UserID != userID {
		return nil, apperrors.ErrNotAuthorized
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := s.save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (s *postService) author(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	return user, nil
}

func (s *postService) save(ctx context.Context, post *model.Post) error {
	if post.Likes == nil {
		post.Likes = []model.Like{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}
	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("update post %s: %w", post.ID, err)
	}
	return nil
}
