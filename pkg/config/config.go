// Package config loads world generation settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all settings for a worldgen host.
type Config struct {
	World   WorldConfig
	Biome   BiomeConfig
	Logging LoggingConfig
}

// WorldConfig identifies the world.
type WorldConfig struct {
	Seed int64
}

// BiomeConfig tunes the biome field and its sample cache.
type BiomeConfig struct {
	Scale          float64 `validate:"gt=0,lte=1"`
	OceanThreshold float64 `validate:"gte=-2,lte=2"`
	CacheCapacity  int     `validate:"gte=0"`
}

// LoggingConfig controls the standard logger.
type LoggingConfig struct {
	Prefix string `validate:"max=32"`
}

var validate = validator.New()

// Load reads configuration from environment variables and an optional .env
// file in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found (this is OK if using environment variables): %v", err)
	}

	config := &Config{
		World: WorldConfig{
			Seed: ParseSeed(getEnv("WORLD_SEED", "0")),
		},
		Biome: BiomeConfig{
			Scale:          getFloatEnv("BIOME_SCALE", 0.003),
			OceanThreshold: getFloatEnv("BIOME_OCEAN_THRESHOLD", -0.25),
			CacheCapacity:  getIntEnv("BIOME_CACHE_CAPACITY", 1024),
		},
		Logging: LoggingConfig{
			Prefix: getEnv("LOG_PREFIX", "worldgen: "),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// ParseSeed turns seed text into a world seed. Integers are used as they
// are; any other text is hashed the way Java hashes strings, so worlds
// named by a phrase get the same seed everywhere.
func ParseSeed(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	var h int32
	for _, c := range s {
		if c > 0xFFFF {
			// Java hashes UTF-16 code units.
			hi, lo := surrogates(c)
			h = 31*h + int32(hi)
			h = 31*h + int32(lo)
			continue
		}
		h = 31*h + int32(c)
	}
	return int64(h)
}

func surrogates(r rune) (rune, rune) {
	r -= 0x10000
	return 0xD800 + (r>>10)&0x3FF, 0xDC00 + r&0x3FF
}

// Helper functions for environment variable access

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return intValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: invalid float value for %s: %s, using default: %g", key, value, defaultValue)
		return defaultValue
	}
	return floatValue
}
