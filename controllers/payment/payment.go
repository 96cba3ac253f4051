package paymentControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/models"
	"github.com/cravespot/cravespot-api/store"
)

type PaymentInput struct {
	Email         string   `json:"email" binding:"required,email"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	TransactionID string   `json:"transactionId"`
	Date          string   `json:"date"`
	CartIDs       []string `json:"cartIds" binding:"required,min=1"`
	MenuIDs       []string `json:"menuIds"`
	Status        string   `json:"status"`
}

// SettlePayment handles POST /paymentHistory: record the payment, then
// remove every cart item it covers in one bulk delete. The payment insert
// is append-only and happens first; if the cleanup fails the payment still
// stands and the error is surfaced. No multi-document transaction is used.
func SettlePayment(payments store.PaymentStore, carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		payment := models.Payment{
			Email:         input.Email,
			Price:         input.Price,
			TransactionID: input.TransactionID,
			Date:          time.Now(),
			CartIDs:       input.CartIDs,
			MenuIDs:       input.MenuIDs,
			Status:        input.Status,
		}
		if payment.TransactionID == "" {
			payment.TransactionID = uuid.NewString()
		}
		if input.Date != "" {
			if parsed, err := time.Parse(time.RFC3339, input.Date); err == nil {
				payment.Date = parsed
			}
		}

		if _, err := payments.Insert(c.Request.Context(), &payment); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}

		deleted, err := carts.DeleteByIDs(c.Request.Context(), input.CartIDs)
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID in cartIds"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment recorded but cart cleanup failed"})
			return
		}

		broadcastPayment(payment)

		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
	}
}

// GetPaymentHistory handles GET /paymentHistory/:email. Self-scoped: the
// path email must match the verified claim email.
func GetPaymentHistory(payments store.PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString(middleware.EmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		result, err := payments.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment history"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
