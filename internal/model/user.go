package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered developer account.
type User struct {
	ID           string    `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" bson:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" bson:"password" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Avatar       string    `json:"avatar" bson:"avatar" gorm:"size:512"`
	Date         time.Time `json:"date" bson:"date" gorm:"autoCreateTime"`
}

// BeforeCreate sets a UUID before creating the row.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRef is the populated user reference embedded in profile responses.
type UserRef struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Ref returns the public reference of the user.
func (u *User) Ref() *UserRef {
	return &UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
