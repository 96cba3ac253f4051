package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/models"
	"github.com/cravespot/cravespot-api/store"
)

type UserInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// UpsertUser handles POST /user, called on every login. Idempotent: a
// second call for the same email reports the conflict instead of
// duplicating the record.
func UpsertUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		_, err := users.FindByEmail(c.Request.Context(), input.Email)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"created": false, "message": "user already exist", "insertedId": nil})
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		user := models.User{
			Email: input.Email,
			Name:  input.Name,
			Photo: input.Photo,
			Role:  models.RoleUser,
		}
		id, err := users.Insert(c.Request.Context(), &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"created": true, "insertedId": id})
	}
}

// GetAllUsers handles GET /user. Admin only.
func GetAllUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := users.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteUser handles DELETE /user/:id. Admin only.
func DeleteUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := users.DeleteByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
	}
}

// MakeAdmin handles PATCH /user/admin/:id, elevating a user's role.
// Admin only.
func MakeAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		modified, err := users.SetRole(c.Request.Context(), c.Param("id"), models.RoleAdmin)
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
	}
}

// CheckAdmin handles GET /users/admin/:email. Self-scoped: the path email
// must match the verified claim email.
func CheckAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString(middleware.EmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
	}
}
