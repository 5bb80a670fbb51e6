package pg

import "errors"

var (
	// ErrInvalidConfig is returned when the connection string cannot be parsed.
	ErrInvalidConfig = errors.New("invalid postgres configuration")

	// ErrConnectionFailed is returned when all connection attempts are exhausted.
	ErrConnectionFailed = errors.New("failed to connect to postgres")

	// ErrHealthcheckFailed is returned when the readiness probe cannot reach the database.
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")

	// ErrMigrationFailed is returned when applying migrations fails.
	ErrMigrationFailed = errors.New("failed to apply migrations")
)
