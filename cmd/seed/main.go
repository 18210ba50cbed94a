package main

import (
	"context"

	"cleanrate/config"
	"cleanrate/di"
	"cleanrate/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	created, err := di.InitializeAuth().SeedAdmin(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	}

	if created {
		log.Info().Str("email", cfg.Seed.Admin.Email).Msg("Admin account created")
	}
}
