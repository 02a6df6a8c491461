package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gallery-backend/pkg/jwt"
)

// Session attaches the admin session (if a valid bearer token is present) to
// the request context. With enforce=false the chain continues regardless, which
// keeps every endpoint open; with enforce=true mutation routes require a valid
// session.
func Session(manager *jwt.Manager, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := manager.ValidateToken(parts[1]); err == nil {
				c.Set("session_role", claims.Role)
			}
		}

		if enforce && c.GetString("session_role") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "admin session required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
