package random

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/pgen-dev/pgen/internal/entropy"
)

// SeedLen is the number of entropy bytes consumed by a Mixer.
const SeedLen = 16

// Seed is the key material of a Mixer.
type Seed [SeedLen]byte

// NewSeed pulls SeedLen bytes from src.
func NewSeed(src entropy.Source) (Seed, error) {
	var s Seed

	if err := src.Fill(s[:]); err != nil {
		return Seed{}, errors.Wrap(err, "failed to read seed")
	}

	return s, nil
}

// Words returns the seed as two little-endian 64-bit words.
func (s Seed) Words() (k0, k1 uint64) {
	return binary.LittleEndian.Uint64(s[:8]), binary.LittleEndian.Uint64(s[8:])
}
