package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// AuthMiddleware validates the bearer token and loads the authenticated user
// into the request context. Every protected handler trusts the loaded user as
// the caller's identity.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		userID, err := utils.ValidateToken(tokenString)
		if err != nil {
			if err == utils.ErrTokenExpired {
				utils.LogError("Expired token presented")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				utils.LogError("Invalid token: %v", err)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			}
			c.Abort()
			return
		}

		// Resolve the subject to an existing user
		var user models.User
		if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
			utils.LogError("User not found for token subject %s: %v", userID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if !user.IsActive {
			utils.LogError("Inactive user attempted access: %s", userID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
			c.Abort()
			return
		}

		// Set user in context
		c.Set("user", user)
		c.Next()
	}
}

// RequireRole gates a route to users holding the given role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}

		user, ok := userVal.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type"})
			c.Abort()
			return
		}

		if user.Role != role {
			utils.LogError("User %s with role %s attempted %s-only access", user.ID, user.Role, role)
			c.JSON(http.StatusForbidden, gin.H{"error": "Access restricted to " + role + " accounts"})
			c.Abort()
			return
		}

		c.Next()
	}
}
