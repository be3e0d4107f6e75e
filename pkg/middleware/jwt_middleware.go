package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/usamabinnadeem-10/realtime-feedback/pkg/memcache"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

// SessionCookie carries the JWT for server-rendered pages and the websocket,
// where an Authorization header is not available.
const SessionCookie = "rf_token"

// TokenFromRequest extracts the session token from the Authorization header or
// the session cookie. Returns "" when neither is present.
func TokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthMiddleware rejects requests without a valid, unrevoked session token
// and exposes the identity as user_id / user_email on the context.
func JWTAuthMiddleware(revoked memcache.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		if revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Token has been logged out")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("session_token", tokenString)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when a valid token is present
// but never aborts. Page shells and the live feed use it: an absent identity
// is a normal control-flow branch there, not an error.
func OptionalAuthMiddleware(revoked memcache.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" || revoked.IsRevoked(tokenString) {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("session_token", tokenString)
		c.Next()
	}
}
