package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mechriz/zen-fit/utils"
)

// SessionSource exposes the token of the active portal session.
type SessionSource interface {
	SessionToken() (string, bool)
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// PortalAuthMiddleware admits requests carrying the token of the current
// therapist session. Tokens already verified are remembered in cache until
// they go idle or reach their own expiry.
func PortalAuthMiddleware(sessions SessionSource, cache utils.TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		tokenString, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		current, active := sessions.SessionToken()
		hash := utils.HashToken(tokenString)
		if !active || subtle.ConstantTimeCompare([]byte(utils.HashToken(current)), []byte(hash)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or logged out"})
			return
		}

		cached, err := cache.Has(c.Request.Context(), hash)
		if err != nil {
			logger.Warn("Auth cache lookup failed", zap.Error(err))
		}
		if !cached {
			_, expiresAt, err := utils.VerifyToken(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			if err := cache.Put(c.Request.Context(), hash, expiresAt); err != nil {
				logger.Warn("Failed to cache portal token", zap.Error(err))
			}
		}

		c.Set("tokenHash", hash)
		c.Next()
	}
}
