package middleware

import (
	"net/http"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if domain.UserRole(role) != requiredRole {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// SyndicOnly middleware requires the syndic role
func SyndicOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSyndic)
}
