package generator

import (
	"math"
)

// EstimateEntropy returns the bit strength of a password of length characters
// drawn uniformly from charsetSize characters.
func EstimateEntropy(length, charsetSize int) float64 {
	if length < 1 || charsetSize < 1 {
		return 0
	}

	return float64(length) * math.Log2(float64(charsetSize))
}
