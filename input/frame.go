package input

import "io/fs"

// MaxPointers is the number of pointer slots in a frame. Desktop windows only
// ever fill slot 0.
const MaxPointers = 4

// Pointer is one touch/pointer record in window coordinates.
type Pointer struct {
	X, Y float64
	Down [ButtonCount]bool
}

// Frame is the input snapshot handed to the engine once per rendered frame.
//
// Positions are in window coordinates; multiply by Scale to get framebuffer
// pixels scaled by the UI factor.
type Frame struct {
	WindowSize [2]int
	Scale      float64
	Keys       [KeyCount]bool
	Pointers   [MaxPointers]Pointer
	Scroll     float64
	Text       []rune
	Dropped    []string
	DropFS     fs.FS
}

// Reset zeroes every field. Slices are dropped, not truncated, so nothing a
// consumer kept from the previous frame is reused.
func (f *Frame) Reset() {
	*f = Frame{}
}

// Pressed reports whether key k is down.
func (f *Frame) Pressed(k Key) bool {
	if int(k) >= len(f.Keys) {
		return false
	}
	return f.Keys[k]
}

