package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/services"
	"github.com/lastortilhas/restaurant-api/utils"
)

// SessionCookie is the cookie carrying the server-side session id.
const SessionCookie = "sid"

const identityKey = "identity"

// AuthMiddleware resolves the request to an identity from either the
// session cookie or a bearer token, in that order. Requests resolving
// to neither are rejected with 401.
func AuthMiddleware(store services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := resolveIdentity(c, store)
		if identity == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set("user_id", identity.ID)
		c.Set("role", identity.Role)
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, store services.SessionStore) *services.Identity {
	if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
		if identity, err := store.Get(sid); err == nil {
			return identity
		}
	}

	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}

	return &services.Identity{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
	}
}

// CurrentIdentity returns the identity set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (*services.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*services.Identity)
	return identity, ok
}
