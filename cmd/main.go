package main

import (
	"p2prates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title P2P Rates API
// @version 1.0
// @description BOB/USDT rates from the P2P order book, conversions and ticker updates.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
