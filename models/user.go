package models

import "time"

// UserRole constants
const (
	RoleUser   = "user"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// User represents a rider, driver or admin in the system
type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Password      string    `json:"-"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	Role          string    `gorm:"default:user" json:"role"`
	ProfileImage  *string   `json:"profile_image"`
	WalletBalance float64   `gorm:"default:0" json:"wallet_balance"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
