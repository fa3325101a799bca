package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Seed          uint64        // Maze seed; 0 seeds from the clock
	RevealSeconds int           // Countdown before walls turn invisible
	TickInterval  time.Duration // Period of one countdown tick

	MinDistance       int // Minimum per-axis start/goal distance
	PlacementAttempts int // Placement draws before falling back to best effort
	Hearts            int // Hearts per player per attempt
	OutcomeBuffer     int // Capacity of the session outcome channel
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("%s[APP]%s [INFO] .env file not found or could not be loaded: %v", ColorGreen, ColorReset, err)
	}

	c, err := Load()
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s %v", ColorGreen, ColorReset, ColorRed, ColorReset, err)
	}
	return c
}

// Load reads the configuration from the environment, falling back to defaults
// for unset variables.
func Load() (Config, error) {
	var c Config
	seed, err := getEnvAsInt("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	c.Seed = uint64(seed)

	if c.RevealSeconds, err = getEnvAsInt("REVEAL_SECONDS", 5); err != nil {
		return Config{}, err
	}
	tickMs, err := getEnvAsInt("TICK_INTERVAL_MS", 1000)
	if err != nil {
		return Config{}, err
	}
	c.TickInterval = time.Duration(tickMs) * time.Millisecond

	if c.MinDistance, err = getEnvAsInt("MIN_DISTANCE", 3); err != nil {
		return Config{}, err
	}
	if c.PlacementAttempts, err = getEnvAsInt("PLACEMENT_ATTEMPTS", 1000); err != nil {
		return Config{}, err
	}
	if c.Hearts, err = getEnvAsInt("HEARTS", 3); err != nil {
		return Config{}, err
	}
	if c.OutcomeBuffer, err = getEnvAsInt("OUTCOME_BUFFER", 64); err != nil {
		return Config{}, err
	}
	return c, nil
}

// getEnvAsInt retrieves an environment variable as a non-negative integer, or
// fallback when it is not set.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("environment variable %s must not be negative: %d", key, value)
	}
	return value, nil
}
