package main

import (
	"os"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
	"github.com/adithi-k-max/FSAD-project/internal/server"
)

// @title Campus Placement API
// @version 1.0
// @description API for the campus placement portal: students, employers, jobs and applications

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name placement.sid
// @description Signed session cookie set by /login and /register

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
