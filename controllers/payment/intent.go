package paymentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/cravespot/cravespot-api/config"
)

type PaymentIntentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent handles POST /create-payment-intent: asks Stripe for
// an intent over the cart total and hands the client secret back so the
// frontend can confirm the card payment.
func CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentIntentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		key := config.StripeSecretKey()
		if key == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe configuration missing"})
			return
		}
		stripe.Key = key

		// Stripe wants the amount in the smallest currency unit.
		amount := int64(input.Price * 100)

		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(amount),
			Currency:           stripe.String(string(stripe.CurrencyUSD)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		}
		intent, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
	}
}
