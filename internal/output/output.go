// Package output delivers generated passwords to the clipboard or a file.
package output

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("no clipboard utility available")

// Clipboard receives text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the desktop clipboard (xclip, xsel, wl-copy, pbcopy or clip).
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "failed to copy to clipboard")
	}

	return nil
}

// DiscardClipboard accepts text and drops it.
type DiscardClipboard struct{}

// WriteAll implements Clipboard.
func (DiscardClipboard) WriteAll(string) error {
	return nil
}

// FileSaver appends text to files.
type FileSaver struct {
	Fs afero.Fs
}

// NewFileSaver returns a FileSaver on fs, or on the OS filesystem when fs is nil.
func NewFileSaver(fs afero.Fs) FileSaver {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return FileSaver{Fs: fs}
}

// Append writes text and a trailing newline to the end of path, creating it with mode 0600.
func (s FileSaver) Append(path, text string) error {
	f, err := s.Fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "failed to open "+path)
	}

	if _, err = f.WriteString(text + "\n"); err != nil {
		_ = f.Close()

		return errors.Wrap(err, "failed to write "+path)
	}

	return errors.Wrap(f.Close(), "failed to close "+path)
}
