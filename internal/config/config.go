package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Cache drivers
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds the whole application configuration, populated from environment variables.
type Config struct {
	App   AppConfig
	Cache CacheConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type CacheConfig struct {
	Driver string        // memory, redis
	TTL    time.Duration // lifetime of cached stats
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SeedConfig struct {
	File     string // optional YAML file replacing the built-in records
	Disabled bool
}

// Load reads the config from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Demo API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Driver: strings.ToLower(getEnv("CACHE_DRIVER", CacheMemory)),
			TTL:    time.Duration(getEnvInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Seed: SeedConfig{
			File:     getEnv("SEED_FILE", ""),
			Disabled: getEnvBool("SEED_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.App.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("APP_PORT must be a port number, got %q", c.App.Port)
	}

	switch c.Cache.Driver {
	case CacheMemory:
	case CacheRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST must be set when CACHE_DRIVER=redis")
		}
	default:
		return fmt.Errorf("CACHE_DRIVER must be %q or %q, got %q", CacheMemory, CacheRedis, c.Cache.Driver)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must not be negative")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
