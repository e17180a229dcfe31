// Package app provides service initialization.
package app

import (
	"io"

	"github.com/guttosm/computer-shop/config"
	"github.com/guttosm/computer-shop/internal/logger"
	"github.com/guttosm/computer-shop/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Shop *service.ComputerShop
}

// InitializeServices initializes the shop facade.
func InitializeServices(cfg config.ShopConfig, out io.Writer) *ServiceComponents {
	opts := []service.Option{
		service.WithOutput(out),
		service.WithLogger(logger.Component("shop")),
	}
	if cfg.Locale != "" {
		opts = append(opts, service.WithLocale(cfg.Locale))
	}

	return &ServiceComponents{
		Shop: service.NewComputerShop(opts...),
	}
}
