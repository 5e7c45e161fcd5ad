package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "JoltCab"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "joltcab"

	// Default database user
	DefaultDBUser = "postgres"

	// Default database password
	DefaultDBPassword = "postgres"

	// JWT token expiration (7 days)
	TokenExpiry = 7 * 24 * time.Hour

	// Base fare charged for every trip
	BaseFare = 5.0

	// Fare charged per kilometre on top of the base fare
	PerKmRate = 2.5

	// Currency used for wallet charges and payment intents
	DefaultCurrency = "usd"

	// Maximum number of items returned by trip and transaction listings
	MaxListLimit = 100

	// Driver locations expire from Redis after this long without an update
	DriverLocationTTL = 5 * time.Minute

	// Minimum password length
	MinPasswordLength = 8

	// Minimum name length
	MinNameLength = 2
)
