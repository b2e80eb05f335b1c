package entropy

import (
	"errors"
)

// ErrUnavailable is returned when the operating system could not deliver random bytes.
var ErrUnavailable = errors.New("entropy source unavailable")
