package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/payments"
	"github.com/joltcab/joltcab-api/utils"
)

// CreatePaymentIntentRequest represents the payment intent request body
type CreatePaymentIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

// CreatePaymentIntent creates a standalone charge intent with the payment
// gateway. The intent is confirmed client-side; the wallet is not involved.
func CreatePaymentIntent(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment intent request for user ID: %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. Amount must be positive", err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	amountMinor := utils.ToMinorUnits(utils.Round2(req.Amount))
	intent, err := payments.Default.CreateIntent(c.Request.Context(), amountMinor, currency)
	if err != nil {
		utils.LogError("Failed to create payment intent for user ID: %s: %v", user.ID, err)
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.BadRequest(c, "Failed to create payment intent", nil)
		return
	}

	utils.LogInfo("Payment intent created for user ID: %s, amount: %.2f", user.ID, intent.Amount)
	utils.Success(c, "Payment intent created successfully", gin.H{
		"client_secret": intent.ClientSecret,
		"amount":        intent.Amount,
	})
}
