package random

import (
	"math/bits"
)

// Stream produces 64-bit pseudo-random words.
type Stream interface {
	Uint64() uint64
}

const (
	mulA = 0xbf58476d1ce4e5b9
	mulB = 0x94d049bb133111eb

	rotLeft  = 13
	rotRight = 17
)

// Mixer is a counter-mode stream keyed by a Seed.
// Each word is a bijective mix of the key and a counter that increases by one
// per call, so no output repeats before the counter wraps.
type Mixer struct {
	k0, k1  uint64
	counter uint64
}

// NewMixer returns a Mixer with its counter at zero.
func NewMixer(seed Seed) *Mixer {
	k0, k1 := seed.Words()

	return &Mixer{k0: k0, k1: k1}
}

// Uint64 implements Stream.
func (m *Mixer) Uint64() uint64 {
	m.counter++

	x := (m.k0 + m.counter) ^ m.k1
	x ^= x >> 30
	x = bits.RotateLeft64(x, rotLeft)
	x *= mulA
	x ^= x >> 27
	x = bits.RotateLeft64(x, -rotRight)
	x *= mulB
	x ^= x >> 31

	return x
}

// Counter returns how many words have been drawn.
func (m *Mixer) Counter() uint64 {
	return m.counter
}
