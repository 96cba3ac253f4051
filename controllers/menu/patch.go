package menuControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/store"
)

type MenuItemUpdate struct {
	Name     *string  `json:"name"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

// UpdateMenuItem applies the supplied fields to a menu item. Admin only.
// URL param: /menu/:id
func UpdateMenuItem(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input MenuItemUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fields := map[string]interface{}{}
		if input.Name != nil {
			fields["name"] = *input.Name
		}
		if input.Recipe != nil {
			fields["recipe"] = *input.Recipe
		}
		if input.Image != nil {
			fields["image"] = *input.Image
		}
		if input.Category != nil {
			fields["category"] = *input.Category
		}
		if input.Price != nil {
			fields["price"] = *input.Price
		}
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		modified, err := menus.Update(c.Request.Context(), id, fields)
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
	}
}
