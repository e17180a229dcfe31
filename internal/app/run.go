package app

import (
	"fmt"

	"github.com/guttosm/computer-shop/internal/logger"
	"github.com/guttosm/computer-shop/internal/service"
)

// Run lists the catalog, then orders a gaming and an office computer.
// A panic inside the shop is logged and returned as an error.
func Run(shop service.Shop) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log := logger.Logger()
			log.Error().Interface("panic", r).Msg("PANIC recovered")
			err = fmt.Errorf("shop session aborted: %v", r)
		}
	}()

	shop.ShowCatalog()
	shop.BuyGamingPC()
	shop.BuyOfficePC()
	return nil
}
