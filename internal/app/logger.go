// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/computer-shop/config"
	"github.com/guttosm/computer-shop/internal/logger"
)

// InitializeLogger initializes the structured logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
