// @title HR Console API
// @version 1.0
// @description Operator console for the HR assessment platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
