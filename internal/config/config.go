package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	FlightsFile  string
	BookingsFile string
	LogLevel     string
}

// LoadConfig loads configuration from environment variables, with a .env
// file honored when present. Defaults keep both data files in the working
// directory.
func LoadConfig() *Config {
	godotenv.Load()

	return &Config{
		FlightsFile:  getEnv("FLIGHTS_FILE", "flights.json"),
		BookingsFile: getEnv("BOOKINGS_FILE", "bookings.json"),
		LogLevel:     getEnv("LOG_LEVEL", "error"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
