package redis

import "errors"

var (
	// ErrInvalidConfig is returned when the connection URL cannot be parsed.
	ErrInvalidConfig = errors.New("invalid redis configuration")

	// ErrConnectionFailed is returned when all connection attempts are exhausted.
	ErrConnectionFailed = errors.New("failed to connect to redis")

	// ErrHealthcheckFailed is returned when the readiness probe cannot reach the server.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
