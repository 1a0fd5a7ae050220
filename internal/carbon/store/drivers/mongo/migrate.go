package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ApplyMigrations creates the unique indexes on users. CreateMany is a no-op
// for indexes that already exist with the same keys and options.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndex),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndex),
		},
	}

	if _, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("mongo: create indexes: %w", err)
	}
	return nil
}
