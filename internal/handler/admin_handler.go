package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ayushqc/college-info-api/internal/middleware"
	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
	"github.com/ayushqc/college-info-api/internal/response"
	"github.com/ayushqc/college-info-api/internal/service"
	"github.com/ayushqc/college-info-api/internal/validator"
)

type AdminHandler struct {
	authService *service.AuthService
	log         zerolog.Logger
}

func NewAdminHandler(authService *service.AuthService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		log:         log.With().Str("component", "admin_handler").Logger(),
	}
}

// Info godoc
// GET /api/v1/colleges/admin-info
func (h *AdminHandler) Info(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrCredentialsRequired)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": identity})
}

// ChangeCredentials godoc
// POST /api/v1/colleges/change-admin-credentials
func (h *AdminHandler) ChangeCredentials(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrCredentialsRequired)
		return
	}

	var req model.ChangeCredentialsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.authService.ChangeCredentials(c.Request.Context(), identity, req.NewUsername, req.NewSecret)
	if errors.Is(err, repository.ErrDuplicateUsername) {
		response.Fail(c, http.StatusBadRequest, response.ErrDuplicateUsername)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("username", identity.Username).Msg("Failed to change admin credentials")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.log.Info().
		Str("username", identity.Username).
		Str("new_username", req.NewUsername).
		Msg("Admin credentials rotated")

	response.Success(c, http.StatusOK, gin.H{
		"message":      "admin credentials updated successfully",
		"new_username": req.NewUsername,
	})
}
