package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/models"
	"github.com/cravespot/cravespot-api/store"
)

type MenuItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// CreateMenuItem inserts a new menu item. Admin only.
func CreateMenuItem(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.MenuItem{
			Name:     input.Name,
			Recipe:   input.Recipe,
			Image:    input.Image,
			Category: input.Category,
			Price:    input.Price,
		}
		id, err := menus.Insert(c.Request.Context(), &item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}
