package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// GetMe returns the authenticated user's profile
func GetMe(c *gin.Context) {
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

	utils.LogInfo("Profile retrieved for user ID: %s", user.ID)
	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": user,
	})
}

// UpdateProfileRequest is an explicit patch: only non-nil fields are applied
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profile_image"`
}

// UpdateProfile handles partial updates of mutable profile fields
func UpdateProfile(c *gin.Context) {
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
	utils.LogInfo("Updating profile for user ID: %s", user.ID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	updates := map[string]interface{}{}

	if req.FullName != nil {
		if valid, msg := utils.ValidateName(*req.FullName); !valid {
			utils.LogError("Invalid name: %s", msg)
			utils.BadRequest(c, msg, nil)
			return
		}
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}

	if req.Phone != nil {
		if valid, msg := utils.ValidatePhone(*req.Phone); !valid {
			utils.LogError("Invalid phone: %s", msg)
			utils.BadRequest(c, msg, nil)
			return
		}
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}

	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}

	if len(updates) == 0 {
		utils.LogError("No valid fields to update for user ID: %s", user.ID)
		utils.BadRequest(c, "No valid fields to update", nil)
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update profile for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", err.Error())
		return
	}

	var updatedUser models.User
	if err := config.DB.First(&updatedUser, "id = ?", user.ID).Error; err != nil {
		utils.LogError("Failed to fetch updated profile for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch updated profile", err.Error())
		return
	}

	utils.LogInfo("Profile updated successfully for user ID: %s", updatedUser.ID)
	utils.Success(c, "Profile updated successfully", gin.H{
		"user": updatedUser,
	})
}
