package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "luckyten/internal/domain/error"
	"luckyten/internal/infrastructure/adapter/api/dto"
	"luckyten/internal/infrastructure/adapter/token"
)

// AuthPlayerIDKey is the gin context key holding the authenticated player ID
const AuthPlayerIDKey = "auth_player_id"

// AuthLoginKey is the gin context key holding the authenticated login
const AuthLoginKey = "auth_login"

// Auth validates the bearer token on the request and stores the
// authenticated player identity in the gin context. Requests without a
// valid token are rejected with 401.
func Auth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "missing or malformed authorization header",
			})
			return
		}

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(AuthPlayerIDKey, claims.PlayerID)
		c.Set(AuthLoginKey, claims.Login)
		c.Next()
	}
}

// AuthenticatedPlayerID returns the player ID set by the Auth middleware.
func AuthenticatedPlayerID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(AuthPlayerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
