//go:build linux

package entropy

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type osSource struct{}

// Fill implements Source with the getrandom(2) syscall.
func (osSource) Fill(buf []byte) error {
	n, err := unix.Getrandom(buf, 0)
	if err != nil {
		return errors.Wrap(ErrUnavailable, "getrandom: "+err.Error())
	}

	if n != len(buf) {
		return errors.Wrapf(ErrUnavailable, "getrandom: short read %d of %d bytes", n, len(buf))
	}

	return nil
}
