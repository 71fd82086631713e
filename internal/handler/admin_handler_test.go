package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushqc/college-info-api/internal/config"
	"github.com/ayushqc/college-info-api/internal/middleware"
	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
	"github.com/ayushqc/college-info-api/internal/service"
)

func newAdminAPI(creds *fakeCredentialStore) *gin.Engine {
	cfg := &config.Config{
		AdminUsername: testAdminUser,
		AdminPassword: testAdminPass,
		BcryptCost:    bcrypt.MinCost,
	}
	authService := service.NewAuthService(creds, cfg, testLogger())
	h := NewAdminHandler(authService, testLogger())

	r := gin.New()
	gated := r.Group("/api/v1/colleges", middleware.RequireAdmin(authService))
	gated.GET("/admin-info", h.Info)
	gated.POST("/change-admin-credentials", h.ChangeCredentials)
	return r
}

func TestAdminInfoWithDefaultCredentials(t *testing.T) {
	r := newAdminAPI(&fakeCredentialStore{creds: map[string]*model.Credential{}})

	w := doJSON(r, http.MethodGet, "/api/v1/colleges/admin-info", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
	assert.Contains(t, w.Body.String(), `"is_default":true`)
}

func TestAdminInfoWithStoredCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)

	r := newAdminAPI(&fakeCredentialStore{creds: map[string]*model.Credential{
		testAdminUser: {Username: testAdminUser, SecretHash: string(hash)},
	}})

	w := doJSON(r, http.MethodGet, "/api/v1/colleges/admin-info", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_default":false`)
	assert.Contains(t, w.Body.String(), `"last_login"`)
}

func TestChangeCredentials(t *testing.T) {
	t.Run("short secret is rejected before persistence", func(t *testing.T) {
		creds := &fakeCredentialStore{creds: map[string]*model.Credential{}}
		r := newAdminAPI(creds)

		w := doJSON(r, http.MethodPost, "/api/v1/colleges/change-admin-credentials",
			model.ChangeCredentialsRequest{NewUsername: "newadmin", NewSecret: "12345"}, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		assert.Zero(t, creds.upserts)
	})

	t.Run("duplicate username", func(t *testing.T) {
		creds := &fakeCredentialStore{
			creds:     map[string]*model.Credential{},
			upsertErr: repository.ErrDuplicateUsername,
		}
		r := newAdminAPI(creds)

		w := doJSON(r, http.MethodPost, "/api/v1/colleges/change-admin-credentials",
			model.ChangeCredentialsRequest{NewUsername: "taken", NewSecret: "super-secret"}, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "DUPLICATE_USERNAME")
	})

	t.Run("success", func(t *testing.T) {
		creds := &fakeCredentialStore{creds: map[string]*model.Credential{}}
		r := newAdminAPI(creds)

		w := doJSON(r, http.MethodPost, "/api/v1/colleges/change-admin-credentials",
			model.ChangeCredentialsRequest{NewUsername: "newadmin", NewSecret: "super-secret"}, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"new_username":"newadmin"`)
		assert.Equal(t, 1, creds.upserts)
	})

	t.Run("requires auth", func(t *testing.T) {
		creds := &fakeCredentialStore{creds: map[string]*model.Credential{}}
		r := newAdminAPI(creds)

		w := doJSON(r, http.MethodPost, "/api/v1/colleges/change-admin-credentials",
			model.ChangeCredentialsRequest{NewUsername: "newadmin", NewSecret: "super-secret"}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, creds.upserts)
	})
}
