// Package main is the entry point for the computer shop demo.
//
// It lists the warehouse catalog and places one gaming and one office order,
// printing the results to stdout. Structured logs go to stderr.
package main

import (
	"os"

	"github.com/guttosm/computer-shop/config"
	"github.com/guttosm/computer-shop/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	shop := app.InitializeApp(cfg, os.Stdout)

	if err := app.Run(shop); err != nil {
		log.Fatal().Err(err).Msg("Shop error")
	}
}
