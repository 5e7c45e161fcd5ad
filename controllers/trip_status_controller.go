package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// CancelTrip cancels a trip owned by the caller. Completed and cancelled are
// terminal; cancelling does not touch the wallet.
func CancelTrip(c *gin.Context) {
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

	if !models.CanTransition(trip.Status, models.TripStatusCancelled) {
		utils.LogError("Illegal cancel - trip ID: %s, status: %s", trip.ID, trip.Status)
		utils.BadRequest(c, "Cannot cancel this trip", gin.H{"status": trip.Status})
		return
	}

	if err := config.DB.Model(&trip).Update("status", models.TripStatusCancelled).Error; err != nil {
		utils.LogError("Failed to cancel trip ID: %s: %v", trip.ID, err)
		utils.InternalServerError(c, "Failed to cancel trip", err.Error())
		return
	}

	utils.LogInfo("Trip cancelled - ID: %s, user ID: %s", trip.ID, user.ID)
	utils.Success(c, "Trip cancelled successfully", gin.H{
		"trip_id": trip.ID,
		"status":  models.TripStatusCancelled,
	})
}

// RateTripRequest represents the rating request body
type RateTripRequest struct {
	Rating float64 `json:"rating" binding:"required,min=1,max=5"`
	Review *string `json:"review"`
}

// RateTrip attaches a rating and optional review to a completed trip
func RateTrip(c *gin.Context) {
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

	var req RateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid rating request for user ID: %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. Rating must be between 1 and 5", err.Error())
		return
	}

	tripID := c.Param("id")
	var trip models.Trip
	if err := config.DB.Where("id = ? AND user_id = ?", tripID, user.ID).First(&trip).Error; err != nil {
		utils.LogError("Trip not found - ID: %s, user ID: %s", tripID, user.ID)
		utils.NotFound(c, "Trip not found")
		return
	}

	if trip.Status != models.TripStatusCompleted {
		utils.LogError("Rating rejected - trip ID: %s, status: %s", trip.ID, trip.Status)
		utils.BadRequest(c, "Can only rate completed trips", gin.H{"status": trip.Status})
		return
	}

	updates := map[string]interface{}{
		"rating": req.Rating,
		"review": req.Review,
	}
	if err := config.DB.Model(&trip).Updates(updates).Error; err != nil {
		utils.LogError("Failed to rate trip ID: %s: %v", trip.ID, err)
		utils.InternalServerError(c, "Failed to save rating", err.Error())
		return
	}

	utils.LogInfo("Trip rated - ID: %s, rating: %.1f", trip.ID, req.Rating)
	utils.Success(c, "Rating submitted successfully", gin.H{
		"trip_id": trip.ID,
		"rating":  req.Rating,
	})
}
