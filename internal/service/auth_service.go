package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushqc/college-info-api/internal/config"
	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
)

// ErrInvalidCredentials is returned when neither the stored credential nor
// the configured defaults match the presented pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore is the persistence surface the resolver needs.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*model.Credential, error)
	RecordLogin(ctx context.Context, username string, at time.Time) error
	Upsert(ctx context.Context, ownerUsername string, cred *model.Credential) error
}

// AuthService resolves presented admin credentials in two tiers: the
// persisted credential document first, the configured defaults second.
type AuthService struct {
	creds CredentialStore
	cfg   *config.Config
	log   zerolog.Logger
	now   func() time.Time
}

func NewAuthService(creds CredentialStore, cfg *config.Config, log zerolog.Logger) *AuthService {
	return &AuthService{
		creds: creds,
		cfg:   cfg,
		log:   log.With().Str("component", "auth_service").Logger(),
		now:   time.Now,
	}
}

// Authenticate authorizes a username/secret pair. A stored credential whose
// hash matches wins and records the login time; a stored mismatch does not
// short-circuit but falls through to the configured defaults, so the default
// pair keeps working until a real credential replaces it.
func (s *AuthService) Authenticate(ctx context.Context, username, secret string) (*model.AdminIdentity, error) {
	cred, err := s.creds.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) == nil {
			at := s.now().UTC()
			if err := s.creds.RecordLogin(ctx, cred.Username, at); err != nil {
				// A failed timestamp update must not block an otherwise valid login.
				s.log.Warn().Err(err).Str("username", cred.Username).Msg("Failed to record login time")
			}
			return &model.AdminIdentity{
				Username:  cred.Username,
				IsDefault: false,
				LastLogin: &at,
			}, nil
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if username == s.cfg.AdminUsername && secret == s.cfg.AdminPassword {
		return &model.AdminIdentity{Username: username, IsDefault: true}, nil
	}

	return nil, ErrInvalidCredentials
}

// ChangeCredentials upserts the credential owned by the current identity with
// a new username/secret pair, marked non-default. The secret is stored only
// as a bcrypt hash. Returns repository.ErrDuplicateUsername when the new
// username is already taken by another credential.
func (s *AuthService) ChangeCredentials(ctx context.Context, identity *model.AdminIdentity, newUsername, newSecret string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newSecret), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash secret: %w", err)
	}

	cred := &model.Credential{
		Username:   newUsername,
		SecretHash: string(hash),
		IsDefault:  false,
	}
	return s.creds.Upsert(ctx, identity.Username, cred)
}
