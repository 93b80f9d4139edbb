package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: nil pointer")

	// ErrParsing is returned when the environment cannot be parsed into
	// the destination struct, for example when a required variable is
	// missing.
	ErrParsing = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile is returned when an .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
