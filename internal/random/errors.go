package random

import (
	"errors"
)

// ErrUnknownAlgorithm is returned by New for an unsupported stream algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown stream algorithm")
