package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Credential is a persisted admin username/secret pair. The secret is stored
// only as a bcrypt hash and is never compared in plain text.
type Credential struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username   string             `bson:"username" json:"username"`
	SecretHash string             `bson:"secret_hash" json:"-"`
	// IsDefault marks a transitional credential seeded from configuration.
	IsDefault bool       `bson:"is_default" json:"is_default"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// AdminIdentity is the authenticated identity attached to a request after the
// credential resolver authorizes it.
type AdminIdentity struct {
	Username  string     `json:"username"`
	IsDefault bool       `json:"is_default"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ChangeCredentialsRequest is the payload for rotating the admin credential.
type ChangeCredentialsRequest struct {
	NewUsername string `json:"new_username" binding:"required,min=3,max=64"`
	NewSecret   string `json:"new_secret" binding:"required,min=6,max=128"`
}
