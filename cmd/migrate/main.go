package main

import (
	"os"

	"cleanrate/config"
	"cleanrate/helper"
	"cleanrate/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction is required: up, down, drop or step-up")
	}

	cfg := config.Get()

	if err := helper.Run(cfg, helper.Direction(os.Args[1])); err != nil {
		log.Fatal().Err(err).Str("direction", os.Args[1]).Msg("Migration failed")
	}
}
