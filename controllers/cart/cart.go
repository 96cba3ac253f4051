package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/models"
	"github.com/cravespot/cravespot-api/store"
)

type CartItemInput struct {
	MenuID string  `json:"menuId"`
	Email  string  `json:"email" binding:"required,email"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

// AddCartItem handles POST /carts.
func AddCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.CartItem{
			MenuID: input.MenuID,
			Email:  input.Email,
			Name:   input.Name,
			Image:  input.Image,
			Price:  input.Price,
		}
		id, err := carts.Insert(c.Request.Context(), &item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GetCartItems handles GET /carts?email=...
func GetCartItems(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := carts.FindByEmail(c.Request.Context(), c.Query("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// DeleteCartItem handles DELETE /carts/:id.
func DeleteCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := carts.DeleteByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
	}
}
