//go:build !linux && !tinygo

package hal

import "fmt"

func newFBDevDisplay(_, _ int) (Display, error) {
	return nil, fmt.Errorf("%w: fbdev requires linux", ErrUnavailable)
}
