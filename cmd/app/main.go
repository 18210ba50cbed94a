package main

import (
	"cleanrate/config"
	"cleanrate/di"
	"cleanrate/helper"
	"cleanrate/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title CleanRate API
// @version 1.0
// @description Cleaning quality rating service for facility managers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
