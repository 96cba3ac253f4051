package menuControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/store"
)

// GetMenu returns the menu, optionally filtered by category and paginated.
// skip = page*limit, so page acts as a zero-indexed window multiplier;
// limit 0 disables the cap (and with the default page=1 also zeroes the
// skip, so the bare request returns everything).
func GetMenu(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
		if err != nil || page < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		category := c.Query("category")

		// skip = page*limit must not overflow into a negative offset.
		if limit > 0 && page > math.MaxInt64/limit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Page out of range"})
			return
		}
		skip := page * limit

		items, err := menus.Find(c.Request.Context(), category, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
