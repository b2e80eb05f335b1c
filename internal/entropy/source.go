package entropy

import (
	"io"

	"github.com/pkg/errors"
)

// Source fills a buffer with unpredictable bytes.
// Implementations must either fill the whole buffer or return an error wrapping ErrUnavailable.
type Source interface {
	Fill(buf []byte) error
}

// OS returns the source backed by the operating system entropy facility.
func OS() Source {
	return osSource{}
}

// readerSource adapts an io.Reader to Source.
type readerSource struct {
	r io.Reader
}

// Reader returns a Source reading from r. A short read is a failure.
func Reader(r io.Reader) Source {
	return readerSource{r: r}
}

// Fill implements Source.
func (s readerSource) Fill(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}

	return nil
}
