package repository

import (
	"context"

	"gorm.io/gorm"

	"devconnector/internal/model"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed profile repository. Skills, experience,
// education and social links are stored as JSON columns.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return translate(r.db.WithContext(ctx).Create(profile).Error)
}

// Update writes every column of the profile, including emptied lists.
func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return translate(r.db.WithContext(ctx).Model(profile).Select("*").Omit("id", "date").Updates(profile).Error)
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&profiles).Error; err != nil {
		return nil, translate(err)
	}
	return profiles, nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return translate(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Profile{}).Error)
}
