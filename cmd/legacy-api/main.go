package main

import (
	"os"

	"github.com/oguzk/stajtakip/internal/legacy/server"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize legacy server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
