//go:build !cgo

package host

import (
	"fmt"

	"goxel/event"
	"goxel/hal"
)

// Run runs body against a platform that cannot open windows.
func Run(body func(hal.Platform) int) int {
	return body(platform{})
}

type platform struct{}

func (platform) DisplaySize() (int, int, bool) { return 0, 0, false }
func (platform) SetErrorHandler(func(error))   {}
func (platform) Terminate()                    {}

func (platform) CreateWindow(hal.WindowConfig, *event.Inbox) (hal.Window, error) {
	return nil, fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", hal.ErrNoWindow)
}
