package config

import "errors"

var (
	// ErrNilPointer is returned when Load is given a nil destination.
	ErrNilPointer = errors.New("config destination is nil")

	// ErrParseFailed is returned when environment variables cannot be
	// parsed into the destination struct.
	ErrParseFailed = errors.New("failed to parse environment into config")
)
