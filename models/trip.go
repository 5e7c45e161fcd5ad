package models

import "time"

// TripStatus constants
const (
	TripStatusRequested = "requested"
	TripStatusAccepted  = "accepted"
	TripStatusStarted   = "started"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

// PaymentMethod constants
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodWallet = "wallet"
)

// Location is a coordinate pair with a display address, embedded in trips
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Trip represents a ride requested by a user. Fare and distance are computed
// once at creation from the pickup/dropoff coordinates and never recomputed.
type Trip struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	UserID          string     `gorm:"index;not null" json:"user_id"`
	DriverID        *string    `json:"driver_id"`
	PickupLocation  Location   `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup_location"`
	DropoffLocation Location   `gorm:"embedded;embeddedPrefix:dropoff_" json:"dropoff_location"`
	Status          string     `gorm:"index" json:"status"`
	PaymentMethod   string     `json:"payment_method"`
	Fare            float64    `json:"fare"`
	Distance        float64    `json:"distance"`
	Duration        *int       `json:"duration"`
	Rating          *float64   `json:"rating"`
	Review          *string    `json:"review"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
}

// allowedTransitions encodes the trip state flow. Completed and cancelled are
// terminal. Accepted and started are reachable only through a future driver
// dispatch flow; cancellation is legal from any non-terminal state.
var allowedTransitions = map[string][]string{
	TripStatusRequested: {TripStatusAccepted, TripStatusStarted, TripStatusCancelled},
	TripStatusAccepted:  {TripStatusStarted, TripStatusCancelled},
	TripStatusStarted:   {TripStatusCompleted, TripStatusCancelled},
}

// CanTransition reports whether a trip may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transition is permitted.
func IsTerminalStatus(status string) bool {
	return len(allowedTransitions[status]) == 0
}
