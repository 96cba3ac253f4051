package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/cravespot/cravespot-api/controllers/cart"
	reviewControllers "github.com/cravespot/cravespot-api/controllers/review"
	"github.com/cravespot/cravespot-api/store"
)

// SetupCartRoutes registers the cart and review endpoints. All public:
// the cart is keyed by email supplied by the (already logged-in) client.
func SetupCartRoutes(r *gin.Engine, s *store.Stores) {
	r.POST("/carts", cartControllers.AddCartItem(s.Carts))
	r.GET("/carts", cartControllers.GetCartItems(s.Carts))
	r.DELETE("/carts/:id", cartControllers.DeleteCartItem(s.Carts))

	r.GET("/reviews", reviewControllers.GetReviews(s.Reviews))
}
