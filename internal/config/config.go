package config

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultComboRate = 550
	DefaultCurrency  = "Rs."
	DefaultLogLevel  = "warn"
)

// Config holds the settings of one booking session
type Config struct {
	ComboRate   float64 // flat meal charge added per night on every reservation
	Currency    string  // label printed in front of amounts
	SeedCatalog bool    // start the session with the standard room catalog
	LogLevel    string
	Debug       bool // log SQL statements
}

// Load reads the configuration from the environment. A .env file, if any,
// is expected to have been loaded by the caller.
func Load() (*Config, error) {
	return &Config{
		ComboRate:   getEnvAsFloatOrDefault("HOTEL_COMBO_RATE", DefaultComboRate),
		Currency:    getEnvOrDefault("HOTEL_CURRENCY", DefaultCurrency),
		SeedCatalog: getEnvAsBoolOrDefault("HOTEL_SEED_CATALOG", true),
		LogLevel:    strings.ToLower(getEnvOrDefault("HOTEL_LOG_LEVEL", DefaultLogLevel)),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		log.Printf("Environment variable %s=%q is not a valid amount, using default value", key, value)
		return defaultValue
	}
	return f
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Environment variable %s=%q is not a valid boolean, using default value", key, value)
		return defaultValue
	}
	return b
}
