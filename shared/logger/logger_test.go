package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"cleanrate/config"
	"cleanrate/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("rating insert failed"))

	assert.Contains(t, buf.String(), "rating insert failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"invalid_level", zerolog.TraceLevel},
		{"", zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutput_Production(t *testing.T) {
	restore(t)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "cleanrate"

	var buf bytes.Buffer
	logger.SetOutput(cfg, &buf)

	log.Info().Str("employee_id", "e-1").Msg("rating saved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cleanrate", line["service"])
	assert.Equal(t, "production", line["env"])
	assert.Equal(t, "e-1", line["employee_id"])
	assert.Equal(t, "rating saved", line["message"])
}

func TestSetOutput_Development(t *testing.T) {
	restore(t)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := &config.Config{}
	cfg.Server.Env = "development"

	var buf bytes.Buffer
	logger.SetOutput(cfg, &buf)

	log.Info().Msg("console line")

	assert.Contains(t, buf.String(), "console line")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
