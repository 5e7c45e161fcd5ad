package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// LocationRequest represents a coordinate pair with a display address
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address" binding:"required"`
}

// CreateTripRequest represents the trip creation request body
type CreateTripRequest struct {
	PickupLocation  LocationRequest `json:"pickup_location" binding:"required"`
	DropoffLocation LocationRequest `json:"dropoff_location" binding:"required"`
	PaymentMethod   string          `json:"payment_method" binding:"required,oneof=cash card wallet"`
}

// CreateTrip creates a trip in requested state. Distance and fare are derived
// from the pickup/dropoff coordinates here, once, and stored with the trip.
func CreateTrip(c *gin.Context) {
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

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid trip request for user ID: %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	distance := utils.CalculateDistance(
		req.PickupLocation.Latitude,
		req.PickupLocation.Longitude,
		req.DropoffLocation.Latitude,
		req.DropoffLocation.Longitude,
	)
	fare := utils.CalculateFare(distance)
	utils.LogDebug("Computed trip pricing for user ID: %s - Distance: %.2f km, Fare: %.2f", user.ID, distance, fare)

	trip := models.Trip{
		ID:     uuid.New().String(),
		UserID: user.ID,
		PickupLocation: models.Location{
			Latitude:  req.PickupLocation.Latitude,
			Longitude: req.PickupLocation.Longitude,
			Address:   req.PickupLocation.Address,
		},
		DropoffLocation: models.Location{
			Latitude:  req.DropoffLocation.Latitude,
			Longitude: req.DropoffLocation.Longitude,
			Address:   req.DropoffLocation.Address,
		},
		Status:        models.TripStatusRequested,
		PaymentMethod: req.PaymentMethod,
		Fare:          fare,
		Distance:      distance,
		CreatedAt:     time.Now().UTC(),
	}

	if err := config.DB.Create(&trip).Error; err != nil {
		utils.LogError("Failed to create trip for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create trip", err.Error())
		return
	}

	utils.LogInfo("Trip created - ID: %s, user ID: %s, fare: %.2f", trip.ID, user.ID, trip.Fare)
	utils.Created(c, "Trip created successfully", gin.H{
		"trip": trip,
	})
}

// ListTrips returns the caller's trips, most recent first, optionally
// filtered by exact status, capped at the listing limit.
func ListTrips(c *gin.Context) {
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

	query := config.DB.Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var trips []models.Trip
	if err := query.Order("created_at DESC").Limit(utils.MaxListLimit).Find(&trips).Error; err != nil {
		utils.LogError("Failed to list trips for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to list trips", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d trips for user ID: %s", len(trips), user.ID)
	utils.Success(c, "Trips retrieved successfully", gin.H{
		"trips": trips,
		"count": len(trips),
	})
}

// GetTrip returns one trip owned by the caller
func GetTrip(c *gin.Context) {
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

	tripID := c.Param("id")
	var trip models.Trip
	if err := config.DB.Where("id = ? AND user_id = ?", tripID, user.ID).First(&trip).Error; err != nil {
		utils.LogError("Trip not found - ID: %s, user ID: %s", tripID, user.ID)
		utils.NotFound(c, "Trip not found")
		return
	}

	utils.Success(c, "Trip retrieved successfully", gin.H{
		"trip": trip,
	})
}
