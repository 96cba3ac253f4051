package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/store"
)

// GetReviews returns every customer review.
func GetReviews(reviews store.ReviewStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := reviews.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
