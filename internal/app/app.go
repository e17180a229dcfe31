// Package app provides application initialization and dependency injection.
package app

import (
	"io"

	"github.com/guttosm/computer-shop/config"
	"github.com/guttosm/computer-shop/internal/service"
)

// InitializeApp creates and wires all application dependencies and returns
// the shop facade writing to out.
func InitializeApp(cfg config.Config, out io.Writer) *service.ComputerShop {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	return InitializeServices(cfg.Shop, out).Shop
}
