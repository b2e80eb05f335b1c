package random

import (
	"github.com/pkg/errors"

	"github.com/pgen-dev/pgen/internal/entropy"
)

// Algorithm names accepted by New.
const (
	AlgorithmMix64    = "mix64"
	AlgorithmChaCha20 = "chacha20"
)

// New seeds a fresh Stream of the named algorithm from src.
// An empty name selects AlgorithmMix64.
func New(src entropy.Source, algorithm string) (Stream, error) {
	switch algorithm {
	case "", AlgorithmMix64:
		seed, err := NewSeed(src)
		if err != nil {
			return nil, err
		}

		return NewMixer(seed), nil
	case AlgorithmChaCha20:
		c, err := NewChaCha(src)
		if err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", algorithm)
	}
}
