package models

import "time"

// TransactionType constants
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// WalletTransaction is one append-only entry in a user's wallet ledger.
// BalanceAfter snapshots the wallet balance immediately following this entry,
// so consecutive entries chain: balance_after = previous balance_after + amount.
type WalletTransaction struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"` // credit, debit
	Description  string    `json:"description"`
	BalanceAfter float64   `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
