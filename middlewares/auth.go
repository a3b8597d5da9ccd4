package middlewares

import (
	"net/http"
	"strings"

	"foodorder/utils"

	"github.com/gin-gonic/gin"
)

func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	// websocket clients cannot set headers
	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearer(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Not logged in."})
			return
		}
		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}
		c.Set(utils.UsernameKey, claims.Username)
		c.Next()
	}
}

// OptionalAuth sets the username when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearer(c); tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil {
				c.Set(utils.UsernameKey, claims.Username)
			}
		}
		c.Next()
	}
}
