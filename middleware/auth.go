package middleware

import (
	"net/http"
	"strings"

	"hotel-reservation-api/models"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the bearer token and stores the admin claims in
// the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization header required.")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid authorization header format.")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequirePermission checks the authenticated role's permission set.
// Must run after RequireAuth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "Role not found in session.")
			c.Abort()
			return
		}

		roleStr, _ := role.(string)
		if !models.RoleHasPermission(roleStr, permission) {
			utils.JSONError(c, http.StatusForbidden, "Insufficient permissions.")
			c.Abort()
			return
		}
		c.Next()
	}
}
