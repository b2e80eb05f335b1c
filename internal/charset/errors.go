package charset

import (
	"errors"
)

// ErrEmpty is returned when the selected categories minus the exclusions leave no characters.
var ErrEmpty = errors.New("no characters provided")

// ErrInvalidEncoding is returned when a custom or excluded character list is not valid UTF-8.
var ErrInvalidEncoding = errors.New("characters are not valid UTF-8")
