package hal

import (
	"errors"
	"image"
	"image/color"

	"goxel/event"
	"goxel/input"
)

var (
	// ErrNoWindow is returned by platforms that cannot open a window.
	ErrNoWindow = errors.New("window backend not available")
	// ErrHandlerRegistered is returned when an event class already has a handler.
	ErrHandlerRegistered = errors.New("handler already registered")
)

// WindowConfig describes the window to create.
type WindowConfig struct {
	Width, Height int
	Title         string
	VSync         bool
	// TPS is the platform tick rate; one tick delivers one batch of events.
	TPS int
}

// Window is one native window with its graphics context.
//
// Platform events are posted to the inbox given at creation, and only from
// within PollEvents or WaitEvents.
type Window interface {
	input.Sampler

	// PollEvents delivers pending platform events.
	PollEvents()
	// WaitEvents blocks until at least one platform event is pending.
	WaitEvents()
	// Visible reports whether the window is shown: still open and not
	// minimised.
	Visible() bool

	// Canvas is the framebuffer-sized drawing surface of the next frame.
	Canvas() *image.RGBA
	Clear(c color.RGBA)
	// Present shows the canvas.
	Present()

	SetTitle(title string)
	SetIcons(icons []image.Image)
	Destroy()
}

// Platform is the process-wide windowing layer.
type Platform interface {
	// DisplaySize returns the primary display's current mode.
	DisplaySize() (w, h int, ok bool)
	CreateWindow(cfg WindowConfig, inbox *event.Inbox) (Window, error)
	// SetErrorHandler installs the callback for platform anomalies.
	SetErrorHandler(fn func(error))
	Terminate()
}
