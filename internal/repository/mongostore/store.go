// Package mongostore implements the repositories on MongoDB. Documents use
// hex ObjectID strings as _id.
package mongostore

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devconnector/internal/repository"
)

const (
	usersCollection    = "users"
	profilesCollection = "profiles"
	postsCollection    = "posts"
)

// NewStore builds the MongoDB-backed repositories.
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Users:    NewUserRepository(db),
		Profiles: NewProfileRepository(db),
		Posts:    NewPostRepository(db),
	}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

// validID reports whether id can name a document.
func validID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return err
	}
}
