package random

import (
	"math"
)

// Observer is told how many words were rejected before each accepted draw.
type Observer interface {
	Draw(rejections int)
}

// Sampler draws uniform indices from a Stream.
type Sampler struct {
	stream   Stream
	observer Observer
}

// NewSampler returns a Sampler reading from stream. observer may be nil.
func NewSampler(stream Stream, observer Observer) *Sampler {
	return &Sampler{stream: stream, observer: observer}
}

// GenRange returns a value in [0, n) without modulo bias.
// For n <= 0 it returns 0.
//
// Words at or above the largest multiple of n that fits in 64 bits are
// discarded and redrawn.
func (s *Sampler) GenRange(n int) int {
	if n <= 0 {
		return 0
	}

	un := uint64(n)
	bound := math.MaxUint64 - (math.MaxUint64 % un)

	var rejections int

	for {
		w := s.stream.Uint64()
		if w < bound {
			if s.observer != nil {
				s.observer.Draw(rejections)
			}

			return int(w % un)
		}

		rejections++
	}
}
