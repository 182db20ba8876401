package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a message on the developer feed.
type Post struct {
	ID       string    `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	UserID   string    `json:"user" bson:"user" gorm:"type:char(36);index;not null"`
	Text     string    `json:"text" bson:"text" gorm:"type:text;not null"`
	Name     string    `json:"name" bson:"name" gorm:"size:255"`
	Avatar   string    `json:"avatar" bson:"avatar" gorm:"size:512"`
	Likes    []Like    `json:"likes" bson:"likes" gorm:"serializer:json;type:json"`
	Comments []Comment `json:"comments" bson:"comments" gorm:"serializer:json;type:json"`
	Date     time.Time `json:"date" bson:"date" gorm:"index"`
}

// BeforeCreate sets a UUID before creating the row.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// LikedBy reports whether userID already liked the post.
func (p *Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// Like records one user's like on a post.
type Like struct {
	ID     string `json:"_id" bson:"_id"`
	UserID string `json:"user" bson:"user"`
}

// Comment is a reply on a post.
type Comment struct {
	ID     string    `json:"_id" bson:"_id"`
	UserID string    `json:"user" bson:"user"`
	Text   string    `json:"text" bson:"text"`
	Name   string    `json:"name" bson:"name"`
	Avatar string    `json:"avatar" bson:"avatar"`
	Date   time.Time `json:"date" bson:"date"`
}
