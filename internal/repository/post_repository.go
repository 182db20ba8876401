package repository

import (
	"context"

	"gorm.io/gorm"

	"devconnector/internal/model"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return translate(r.db.WithContext(ctx).Model(post).Select("*").Omit("id", "date").Updates(post).Error)
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}))
}

func (r *postRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return translate(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Post{}).Error)
}
