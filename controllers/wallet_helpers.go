package controllers

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// creditWallet applies a credit to a user's ledger in a single atomic commit:
// the balance increment and the transaction log append either both happen or
// neither does. The increment runs against the stored balance, not a value
// read earlier in the request, so concurrent credits stay additive.
func creditWallet(userID string, amount float64, description string) (*models.WalletTransaction, error) {
	var txn models.WalletTransaction

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFoundError("User not found", gorm.ErrRecordNotFound)
		}

		// Re-read inside the transaction for the balance-after snapshot
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		txn = models.WalletTransaction{
			ID:           uuid.New().String(),
			UserID:       userID,
			Amount:       amount,
			Type:         models.TransactionTypeCredit,
			Description:  description,
			BalanceAfter: utils.Round2(user.WalletBalance),
			CreatedAt:    time.Now().UTC(),
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// getWalletBalance returns the user's current balance from the store
func getWalletBalance(userID string) (float64, error) {
	var user models.User
	if err := config.DB.Select("wallet_balance").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}
