//go:build windows

package entropy

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type osSource struct{}

// Fill implements Source with RtlGenRandom (advapi32 SystemFunction036).
func (osSource) Fill(buf []byte) error {
	if err := windows.RtlGenRandom(buf); err != nil {
		return errors.Wrap(ErrUnavailable, "RtlGenRandom: "+err.Error())
	}

	return nil
}
