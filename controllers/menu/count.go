package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/store"
)

// CountMenu returns the number of menu items, optionally per category.
// Query param: category
func CountMenu(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := menus.Count(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count menu"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
