package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the per-user document holding career and education history.
type Profile struct {
	ID             string       `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	UserID         string       `json:"-" bson:"user" gorm:"type:char(36);uniqueIndex;not null"`
	User           *UserRef     `json:"user" bson:"-" gorm:"-"`
	Company        string       `json:"company,omitempty" bson:"company,omitempty" gorm:"size:255"`
	Website        string       `json:"website,omitempty" bson:"website,omitempty" gorm:"size:512"`
	Location       string       `json:"location,omitempty" bson:"location,omitempty" gorm:"size:255"`
	Status         string       `json:"status" bson:"status" gorm:"size:255;not null"`
	Skills         []string     `json:"skills" bson:"skills" gorm:"serializer:json;type:json"`
	Bio            string       `json:"bio,omitempty" bson:"bio,omitempty" gorm:"type:text"`
	GithubUsername string       `json:"githubusername,omitempty" bson:"githubusername,omitempty" gorm:"size:255"`
	Experience     []Experience `json:"experience" bson:"experience" gorm:"serializer:json;type:json"`
	Education      []Education  `json:"education" bson:"education" gorm:"serializer:json;type:json"`
	Social         Social       `json:"social" bson:"social" gorm:"serializer:json;type:json"`
	Date           time.Time    `json:"date" bson:"date" gorm:"autoCreateTime"`
}

// BeforeCreate sets a UUID before creating the row.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Experience is a single job in a profile's work history.
type Experience struct {
	ID          string     `json:"_id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Company     string     `json:"company" bson:"company"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time  `json:"from" bson:"from"`
	To          *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool       `json:"current" bson:"current"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Education is a single school entry in a profile.
type Education struct {
	ID           string     `json:"_id" bson:"_id"`
	School       string     `json:"school" bson:"school"`
	Degree       string     `json:"degree" bson:"degree"`
	FieldOfStudy string     `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time  `json:"from" bson:"from"`
	To           *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool       `json:"current" bson:"current"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Social holds a profile's social network links.
type Social struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}
