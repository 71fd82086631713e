package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayushqc/college-info-api/internal/config"
)

// Connect creates and validates a MongoDB client, returning a handle to the
// configured database. Callers own the client and must Disconnect it.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(cfg.MongoDB)

	log.Info().
		Str("database", cfg.MongoDB).
		Msg("MongoDB connected")

	return client, db, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// username index backs the one-credential-per-username invariant.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("credentials").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create credentials index: %w", err)
	}

	_, err = db.Collection("timeline_events").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "college_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create timeline index: %w", err)
	}

	return nil
}
