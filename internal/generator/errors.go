package generator

import (
	"errors"

	"github.com/pgen-dev/pgen/internal/charset"
)

var (
	// ErrInvalidLength is returned for a password length below 1.
	ErrInvalidLength = errors.New("password length must be at least 1")

	// ErrInvalidCount is returned for a batch size below 1.
	ErrInvalidCount = errors.New("password count must be at least 1")

	// ErrEmptyCharset is returned when there is nothing to draw from.
	ErrEmptyCharset = charset.ErrEmpty

	// ErrNoRepeatInfeasible is returned when no-repeat is requested for a password
	// longer than the charset.
	ErrNoRepeatInfeasible = errors.New("no-repeat requires length not greater than charset size")
)
