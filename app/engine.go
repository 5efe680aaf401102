package app

import (
	"image"

	"goxel/input"
)

// Callbacks are the shell services handed to the engine at Init.
type Callbacks struct {
	// SetTitle pushes text to the window chrome. It is a no-op in batch mode.
	SetTitle func(title string)
}

// Engine is the editor core the shell drives. The loop calls it from a
// single goroutine only.
type Engine interface {
	Init(cb Callbacks) error
	// Reset restores the startup document.
	Reset()
	// SelfTest runs the built-in checks. Debug builds call it before Reset.
	SelfTest() error

	// Advance consumes one frame of input.
	Advance(in *input.Frame)
	// Render draws the current frame into dst.
	Render(dst *image.RGBA)
	Release()

	Import(path string) error
	// Export writes the document and returns the process exit status for it.
	Export(path string) int

	// RequestQuitConfirmation asks the user whether to quit. The answer
	// shows up later in QuitRequested.
	RequestQuitConfirmation()
	QuitRequested() bool
}
