package menuControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/store"
)

// DeleteMenuItem removes a menu item. Admin only.
// URL param: /menu/:id
func DeleteMenuItem(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		deleted, err := menus.DeleteByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
	}
}
