package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Port          string
	LogLevel      string
	StoreBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	NatsURL       string // empty disables the NATS relay
	InitialUsers  int
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Port:          GetEnv("PORT", "8080"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		StoreBackend:  GetEnv("STORE_BACKEND", BackendMemory),
		RedisAddr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvInt("REDIS_DB", 0),
		RedisPrefix:   GetEnv("REDIS_PREFIX", "auction-board"),
		NatsURL:       GetEnv("NATS_URL", ""),
		InitialUsers:  GetEnvInt("INITIAL_USERS", 1),
	}
}

// Validate checks values that flags and environment cannot constrain
func (c Config) Validate() error {
	if _, err := strconv.Atoi(strings.TrimPrefix(c.Port, ":")); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	switch c.StoreBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)", c.StoreBackend, BackendMemory, BackendRedis)
	}
	if c.InitialUsers < 0 {
		return fmt.Errorf("initial users must not be negative, got %d", c.InitialUsers)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// GetEnv returns the value of key or fallback when it is unset or empty
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer value of key or fallback when it is unset or malformed
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
