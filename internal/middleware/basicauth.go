package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/response"
	"github.com/ayushqc/college-info-api/internal/service"
)

// ContextKeyIdentity is the Gin context key for the authenticated admin identity.
const ContextKeyIdentity = "admin_identity"

// Authenticator resolves a username/secret pair to an admin identity.
type Authenticator interface {
	Authenticate(ctx context.Context, username, secret string) (*model.AdminIdentity, error)
}

// RequireAdmin gates a route behind HTTP Basic credentials resolved by the
// two-tier credential resolver. Missing credentials get a WWW-Authenticate
// challenge so clients know to re-authenticate.
func RequireAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, secret, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="college-info-api"`)
			response.AbortFail(c, http.StatusUnauthorized, response.ErrCredentialsRequired)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), username, secret)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
				return
			}
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the Gin context.
func GetIdentity(c *gin.Context) *model.AdminIdentity {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	identity, ok := val.(*model.AdminIdentity)
	if !ok {
		return nil
	}
	return identity
}
