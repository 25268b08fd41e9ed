//go:build !tinygo && !cgo

package hal

import (
	"context"
	"fmt"
)

// windowDisplay is never instantiated without cgo.
type windowDisplay struct{ Display }

func RunWindow(_ context.Context, _ HostConfig, _ func(context.Context, HAL) error) error {
	return fmt.Errorf("%w: window mode requires cgo (build/run with CGO_ENABLED=1)", ErrUnavailable)
}
