package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/payments"
	"github.com/joltcab/joltcab-api/utils"
)

// TopupWalletRequest represents the wallet topup request body
type TopupWalletRequest struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
}

// TopupWallet charges the caller's payment method through the payment gateway
// and, only if the charge succeeds, credits the wallet ledger. A declined or
// failed charge leaves balance and transaction log untouched.
func TopupWallet(c *gin.Context) {
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

	var req TopupWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid topup request for user ID: %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. Amount must be positive and payment_method_id is required", err.Error())
		return
	}

	amount := utils.Round2(req.Amount)
	amountMinor := utils.ToMinorUnits(amount)
	utils.LogDebug("Topup request - user ID: %s, amount: %.2f (%d minor units)", user.ID, amount, amountMinor)

	// Authorize the charge before any ledger mutation
	if err := payments.Default.Charge(c.Request.Context(), amountMinor, utils.DefaultCurrency, req.PaymentMethodID); err != nil {
		utils.LogError("Charge failed for user ID: %s: %v", user.ID, err)
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.BadRequest(c, "Payment failed", nil)
		return
	}
	utils.LogDebug("Charge authorized for user ID: %s", user.ID)

	txn, err := creditWallet(user.ID, amount, "Wallet top-up")
	if err != nil {
		utils.LogError("Failed to credit wallet for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to credit wallet", err.Error())
		return
	}

	utils.LogInfo("Wallet topped up - user ID: %s, amount: %.2f, new balance: %.2f", user.ID, amount, txn.BalanceAfter)
	utils.Success(c, "Wallet topped up successfully", gin.H{
		"new_balance":    txn.BalanceAfter,
		"transaction_id": txn.ID,
	})
}
