package repository

import (
	"errors"

	"gorm.io/gorm"
)

// NewGormStore builds the MySQL-backed repositories.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewUserRepository(db),
		Profiles: NewProfileRepository(db),
		Posts:    NewPostRepository(db),
	}
}

// translate maps gorm errors onto the backend-neutral ones.
// The gorm connection must be opened with TranslateError enabled.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// affected turns a write that touched nothing into ErrNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
