package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/auth"
	"github.com/cravespot/cravespot-api/models"
	"github.com/cravespot/cravespot-api/store"
)

// EmailKey is the gin context key the verified claim email is stored under.
const EmailKey = "email"

// VerifyToken checks the bearer token and attaches the claim email to the
// context. No side effects beyond that.
func VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// VerifyAdmin allows the request through only if the verified email maps to
// a user record with the admin role. Runs after VerifyToken. The role is
// looked up fresh on every request so a demotion takes effect immediately.
func VerifyAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" {
			// VerifyToken should have set this; report rather than swallow.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token claims missing email"})
			c.Abort()
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			c.Abort()
			return
		}
		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}
