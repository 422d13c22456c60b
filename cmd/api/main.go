package main

import (
	"os"

	"github.com/oguzk/stajtakip/internal/pkg/logger"
	"github.com/oguzk/stajtakip/internal/server"
)

// @title Staj Takip API
// @version 1.0
// @description Internship tracking API for commission-based evaluation of mandatory student internships

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /api
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
