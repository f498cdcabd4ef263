package main

import (
	"os"

	"pickup/core/logger"
	"pickup/core/server"
)

// @title Pickup API
// @version 1.0
// @description Backend for planning pickup sports events and groups

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
