// Package config provides configuration management for the computer shop.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the complete application configuration.
type Config struct {
	Log  LogConfig
	Shop ShopConfig
}

// LogConfig holds structured logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// ShopConfig holds console presentation settings for the shop.
type ShopConfig struct {
	// Locale selects the language of headers and confirmations.
	Locale string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Shop: ShopConfig{
			Locale: strings.ToLower(getEnv("SHOP_LOCALE", "en")),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
