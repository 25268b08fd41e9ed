package chaos

import "errors"

var (
	// ErrResourceUnavailable is returned when the display sink or the
	// random source cannot be obtained.
	ErrResourceUnavailable = errors.New("chaos: resource unavailable")
)
