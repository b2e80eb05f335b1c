package config

import (
	"errors"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigFile is returned when a config file exists but can not be read.
	ErrConfigFile = errors.New("failed to read config file")
)
