package di

import (
	"context"
	"time"

	"cleanrate/infras/kafka"
	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/permissions"
	"cleanrate/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

const otelShutdownTimeout = 5 * time.Second

// ProvideClosers lists the shared resources released after the HTTP server drained.
func ProvideClosers(db *postgres.Connection, redisClient *goRedis.Client, kafkaClient kafka.Client, otl otel.Otel) []http.Closer {
	return []http.Closer{
		func() error {
			db.Close()

			return nil
		},
		redisClient.Close,
		kafkaClient.Close,
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
			defer cancel()

			return otl.Shutdown(ctx) //nolint:wrapcheck
		},
	}
}

func ProvidePermissions() *permissions.PermissionData {
	return permissions.Get()
}
