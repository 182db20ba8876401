package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"devconnector/internal/model"
	"devconnector/internal/repository"
)

type profileRepository struct {
	coll *mongo.Collection
}

// NewProfileRepository builds a MongoDB-backed profile repository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{coll: db.Collection(profilesCollection)}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = newID()
	}
	if profile.Date.IsZero() {
		profile.Date = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, profile)
	return translate(err)
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	if !validID(userID) {
		return nil, repository.ErrNotFound
	}
	var profile model.Profile
	if err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&profile); err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	profiles := []model.Profile{}
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"user": userID})
	return translate(err)
}
