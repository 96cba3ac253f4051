package menuControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/store"
)

// GetMenuItem returns a single menu item.
// URL param: /menu/:id
func GetMenuItem(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		item, err := menus.FindByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
