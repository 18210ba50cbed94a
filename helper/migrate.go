package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"cleanrate/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

// Direction selects what Run does with the migration set.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("invalid direction, use up, down, drop or step-up")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// ConnectionString targets the write database and the configured migrations table.
func ConnectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		getDBName(config, write.Name),
		write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)
}

func apply(mig *migrate.Migrate, direction Direction) error {
	switch direction {
	case DirectionUp:
		return mig.Up() //nolint:wrapcheck
	case DirectionDown:
		return mig.Steps(-1) //nolint:wrapcheck
	case DirectionStepUp:
		return mig.Steps(1) //nolint:wrapcheck
	case DirectionDrop:
		return mig.Down() //nolint:wrapcheck
	default:
		return ErrUnknownDirection
	}
}

func Run(config *config.Config, direction Direction) error {
	if err := validate(direction); err != nil {
		return err
	}

	mig, err := migrate.New(migrationsSource, ConnectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	if err := apply(mig, direction); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", direction, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("direction", string(direction)).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func validate(direction Direction) error {
	switch direction {
	case DirectionUp, DirectionDown, DirectionStepUp, DirectionDrop:
		return nil
	default:
		return ErrUnknownDirection
	}
}

// Up applies every pending migration. Used for DB_POSTGRES_AUTO_MIGRATE at boot.
func Up(config *config.Config) error {
	return Run(config, DirectionUp)
}
