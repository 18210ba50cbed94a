package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cleanrate/config"
	"cleanrate/di"
	"cleanrate/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := di.InitializeAuditConsumer().Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Audit consumer stopped")
	}

	log.Info().Msg("Audit consumer shut down.")
}
