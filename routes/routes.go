package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joltcab/joltcab-api/controllers"
	"github.com/joltcab/joltcab-api/middleware"
	"github.com/joltcab/joltcab-api/models"
	"github.com/joltcab/joltcab-api/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	api := router.Group("/api")
	{
		// Liveness endpoints
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": utils.AppName + " API v1.0",
				"status":  "running",
			})
		})
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().UTC(),
			})
		})

		// Public auth routes
		api.POST("/auth/register", controllers.RegisterUser)
		api.POST("/auth/login", controllers.LoginUser)

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", controllers.GetMe)
			protected.PUT("/auth/profile", controllers.UpdateProfile)

			protected.POST("/trips", controllers.CreateTrip)
			protected.GET("/trips", controllers.ListTrips)
			protected.GET("/trips/:id", controllers.GetTrip)
			protected.POST("/trips/:id/rate", controllers.RateTrip)
			protected.POST("/trips/:id/cancel", controllers.CancelTrip)

			protected.GET("/wallet/balance", controllers.GetWalletBalance)
			protected.GET("/wallet/transactions", controllers.GetWalletTransactions)
			protected.POST("/wallet/topup", controllers.TopupWallet)

			protected.POST("/payments/create-intent", controllers.CreatePaymentIntent)

			// Driver-only routes
			drivers := protected.Group("/drivers")
			drivers.Use(middleware.RequireRole(models.RoleDriver))
			{
				drivers.POST("/location", controllers.UpdateDriverLocation)
			}
		}
	}

	return router
}
