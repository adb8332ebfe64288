package main

import (
	"os"
)

// @title FX Risk Dashboard API
// @version 1.0
// @description Currency exposure, risk tiers and alerts for a treasury desk.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
