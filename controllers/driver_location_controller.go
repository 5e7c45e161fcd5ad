package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// UpdateLocationRequest represents a driver position report
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type driverLocation struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

func driverLocationKey(driverID string) string {
	return fmt.Sprintf("driver:location:%s", driverID)
}

// UpdateDriverLocation stores a driver's last-known position in Redis with a
// TTL, so stale drivers age out on their own. Single position only; there is
// no streaming.
func UpdateDriverLocation(c *gin.Context) {
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

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid location update for driver ID: %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if config.RDB == nil {
		utils.LogError("Location update rejected - Redis not initialized")
		utils.InternalServerError(c, "Location tracking is unavailable", nil)
		return
	}

	loc := driverLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		UpdatedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		utils.LogError("Failed to encode location for driver ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to store location", err.Error())
		return
	}

	if err := config.RDB.Set(c.Request.Context(), driverLocationKey(user.ID), payload, utils.DriverLocationTTL).Err(); err != nil {
		utils.LogError("Failed to store location for driver ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to store location", err.Error())
		return
	}

	utils.LogInfo("Location updated for driver ID: %s", user.ID)
	utils.Success(c, "Location updated successfully", gin.H{
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
	})
}
