package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayushqc/college-info-api/internal/model"
)

type CredentialRepository struct {
	col *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection("credentials")}
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*model.Credential, error) {
	var cred model.Credential
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &cred, nil
}

// RecordLogin persists the last successful authentication time. Concurrent
// logins by the same user race last-write-wins, which is acceptable here.
func (r *CredentialRepository) RecordLogin(ctx context.Context, username string, at time.Time) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

// Upsert replaces the credential owned by ownerUsername with the new
// username/hash pair, marked non-default, creating the document if the owner
// has none yet. A unique-index violation on the new username fails without
// mutating state.
func (r *CredentialRepository) Upsert(ctx context.Context, ownerUsername string, cred *model.Credential) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"username": ownerUsername},
		bson.M{"$set": bson.M{
			"username":    cred.Username,
			"secret_hash": cred.SecretHash,
			"is_default":  cred.IsDefault,
		}},
		options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}
	return nil
}
