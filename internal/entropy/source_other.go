//go:build !linux && !windows

package entropy

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

type osSource struct{}

// Fill implements Source with crypto/rand, which uses getentropy(2) or
// the platform equivalent.
func (osSource) Fill(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}

	return nil
}
