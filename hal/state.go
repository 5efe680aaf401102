package hal

// State is the window runtime state. Only the lifecycle handlers registered
// by Manager mutate it, and only while the inbox is drained.
type State struct {
	FramebufferSize [2]int
	WindowSize      [2]int
	Visible         bool
	Focused         bool
	Iconified       bool
	// ShouldClose stays false: native close requests are turned into quit
	// confirmations instead.
	ShouldClose bool
	// CloseRequests counts close requests raised since the window opened.
	CloseRequests int
}

// Renderable reports whether a frame may be drawn.
func (s State) Renderable() bool {
	return s.Visible && s.Focused && !s.Iconified
}
