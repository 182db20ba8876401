package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// DisconnectMongo closes client, bounded by the connect timeout.
func DisconnectMongo(client *mongo.Client, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn("disconnect mongo", zap.Error(err))
	}
}

// MigrateMongo creates the unique indexes the repositories rely on. With reset
// set, the collections are dropped first.
func MigrateMongo(ctx context.Context, database *mongo.Database, reset bool, log *zap.Logger) error {
	if reset {
		log.Warn("RESET_DB enabled: dropping collections")
		for _, name := range []string{"users", "profiles", "posts"} {
			if err := database.Collection(name).Drop(ctx); err != nil {
				return fmt.Errorf("drop %s: %w", name, err)
			}
		}
	}

	indexes := map[string]mongo.IndexModel{
		"users": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"profiles": {
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"posts": {
			Keys: bson.D{{Key: "date", Value: -1}},
		},
	}
	for name, idx := range indexes {
		if _, err := database.Collection(name).Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("create %s index: %w", name, err)
		}
	}
	return nil
}
