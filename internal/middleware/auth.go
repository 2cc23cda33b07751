package middleware

import (
	"dental-center-server/internal/auth"
	"dental-center-server/internal/models"
	"dental-center-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireSession creates a middleware that only lets requests through while
// the gate is authenticated. The gate is resumed before the router starts
// serving, so a loading gate is never observed here; anything short of
// authenticated is a plain 401.
func RequireSession(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := gate.Current()
		if !ok {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("user", user)

		c.Next()
	}
}

// Helper function to get the signed-in user from context
func GetUserFromContext(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
