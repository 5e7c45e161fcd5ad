package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/joltcab/joltcab-api/utils"
)

// Config holds all configuration for the application
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	RedisAddr       string
	RedisPassword   string
	Port            string
	Env             string
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; the environment may already be populated.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:          getEnv("DB_HOST", utils.DefaultDBHost),
		DBPort:          getEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:          getEnv("DB_USER", utils.DefaultDBUser),
		DBPassword:      getEnv("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:          getEnv("DB_NAME", utils.DefaultDBName),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		Port:            getEnv("PORT", utils.DefaultPort),
		Env:             getEnv("ENV", "development"),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
