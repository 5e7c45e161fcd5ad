package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// GetWalletBalance returns the user's wallet balance
func GetWalletBalance(c *gin.Context) {
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

	balance, err := getWalletBalance(user.ID)
	if err != nil {
		utils.LogError("Failed to get balance for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get wallet balance", err.Error())
		return
	}

	utils.LogInfo("Wallet balance retrieved for user ID: %s", user.ID)
	utils.Success(c, "Wallet balance retrieved successfully", gin.H{
		"balance": balance,
	})
}

// GetWalletTransactions returns the user's ledger entries, most recent first,
// capped at the listing limit.
func GetWalletTransactions(c *gin.Context) {
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

	var transactions []models.WalletTransaction
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(utils.MaxListLimit).Find(&transactions).Error; err != nil {
		utils.LogError("Failed to get transactions for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get transactions", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d transactions for user ID: %s", len(transactions), user.ID)
	utils.Success(c, "Wallet transactions retrieved successfully", gin.H{
		"transactions": transactions,
		"count":        len(transactions),
	})
}
