package middleware

import (
	"context"
	"net/http"
	"strings"

	"roomify/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards admin-only routes. A request must carry a bearer
// token minted by the login endpoint; the token's hash must still be present
// in the auth cache, so revocation and expiry both cut access.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		username, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		cache := utils.GetAuthCacheClient()
		ok, err := cache.Exists(context.Background(), "admin_token:"+utils.HashToken(tokenString)).Result()
		if err != nil || ok == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("adminUser", username)
		c.Set("isAdmin", true)
		c.Next()
	}
}
