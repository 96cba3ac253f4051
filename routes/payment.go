package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/cravespot/cravespot-api/controllers/payment"
	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/store"
)

// SetupPaymentRoutes registers payment settlement, history, the Stripe
// intent endpoint and the live feed.
func SetupPaymentRoutes(r *gin.Engine, s *store.Stores) {
	r.POST("/paymentHistory", paymentControllers.SettlePayment(s.Payments, s.Carts))
	r.GET("/paymentHistory/:email", middleware.VerifyToken(), paymentControllers.GetPaymentHistory(s.Payments))

	r.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent())

	r.GET("/ws/payments", paymentControllers.PaymentFeedHandler)
}
