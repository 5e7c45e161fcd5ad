package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=user driver admin"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Registration attempt for email: %s", req.Email)

	// Validate email
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Registration attempt failed - Invalid email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	// Validate password
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration attempt failed - Invalid password for email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	// Validate name
	if valid, msg := utils.ValidateName(req.FullName); !valid {
		utils.LogError("Registration attempt failed - Invalid name: %s - %s", req.FullName, msg)
		utils.BadRequest(c, "Invalid name", msg)
		return
	}

	// Validate phone
	if valid, msg := utils.ValidatePhone(req.Phone); !valid {
		utils.LogError("Registration attempt failed - Invalid phone: %s - %s", req.Phone, msg)
		utils.BadRequest(c, "Invalid phone", msg)
		return
	}

	// Check if user exists. Only a definitive not-found lets registration
	// proceed; any other lookup error must not fall through to Create.
	var existing models.User
	err := config.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		utils.LogError("Registration attempt failed - Email already registered: %s", req.Email)
		utils.BadRequest(c, "Email already registered", nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Failed to check existing user for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to check existing user", err.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		ID:            uuid.New().String(),
		Email:         req.Email,
		Password:      hashedPassword,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Role:          role,
		WalletBalance: 0,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("User registered successfully - ID: %s, email: %s", user.ID, user.Email)
	utils.Created(c, "Registration successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// LoginUser handles user login
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Login attempt for email: %s", req.Email)

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login attempt failed - User not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login attempt failed - Wrong password for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("User logged in successfully - ID: %s", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}
