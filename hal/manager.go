package hal

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"goxel/assets"
	"goxel/event"
	"goxel/internal/logging"
)

const (
	fallbackWidth  = 640
	fallbackHeight = 480
)

// Config configures Open.
type Config struct {
	Title string
	VSync bool
	TPS   int
	// Icons overrides the embedded icon set.
	Icons []image.Image
	// ConfirmQuit is raised instead of closing when the user closes the window.
	ConfirmQuit func()
	// Debug makes platform errors fatal.
	Debug bool
}

// Handler receives one event class.
type Handler func(ev event.Event)

// Manager owns the window lifecycle: creation, icon, event handlers and
// teardown.
type Manager struct {
	log      *zap.Logger
	platform Platform
	win      Window
	inbox    event.Inbox
	handlers [event.KindCount]Handler
	state    State
	confirm  func()
	debug    bool
	closed   bool
}

// Open creates the window sized to the primary display and installs the
// lifecycle handlers (resize, iconify, focus, close).
func Open(p Platform, cfg Config, log *zap.Logger) (*Manager, error) {
	m := &Manager{
		log:      logging.OrNop(log).Named("window"),
		platform: p,
		confirm:  cfg.ConfirmQuit,
		debug:    cfg.Debug,
	}
	p.SetErrorHandler(m.onError)

	w, h, ok := p.DisplaySize()
	if !ok || w <= 0 {
		w = fallbackWidth
	}
	if !ok || h <= 0 {
		h = fallbackHeight
	}

	win, err := p.CreateWindow(WindowConfig{
		Width:  w,
		Height: h,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
		TPS:    cfg.TPS,
	}, &m.inbox)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	m.win = win

	icons := cfg.Icons
	if icons == nil {
		icons = assets.MustIcons()
	}
	win.SetIcons(icons)

	m.state.WindowSize[0], m.state.WindowSize[1] = win.WindowSize()
	m.state.FramebufferSize[0], m.state.FramebufferSize[1] = win.FramebufferSize()
	m.state.Visible = win.Visible()
	m.state.Focused = true

	lifecycle := []struct {
		kind event.Kind
		fn   Handler
	}{
		{event.KindResize, m.onResize},
		{event.KindIconify, m.onIconify},
		{event.KindFocus, m.onFocus},
		{event.KindClose, m.onClose},
	}
	for _, l := range lifecycle {
		if err := m.Handle(l.kind, l.fn); err != nil {
			return nil, err
		}
	}

	m.log.Info("window created",
		zap.Int("width", m.state.WindowSize[0]),
		zap.Int("height", m.state.WindowSize[1]),
		zap.Int("icons", len(icons)))
	return m, nil
}

// Handle registers the handler of one event class. Each class takes exactly
// one handler.
func (m *Manager) Handle(kind event.Kind, fn Handler) error {
	if kind == event.KindNone || kind >= event.KindCount {
		return fmt.Errorf("handle %s: invalid event class", kind)
	}
	if m.handlers[kind] != nil {
		return fmt.Errorf("handle %s: %w", kind, ErrHandlerRegistered)
	}
	m.handlers[kind] = fn
	return nil
}

// Poll lets the platform deliver pending events, then dispatches them.
func (m *Manager) Poll() int {
	m.win.PollEvents()
	n := m.Dispatch()
	m.state.FramebufferSize[0], m.state.FramebufferSize[1] = m.win.FramebufferSize()
	m.state.Visible = m.win.Visible()
	return n
}

// Wait blocks until the platform has an event.
func (m *Manager) Wait() {
	m.win.WaitEvents()
}

// Dispatch drains the inbox once, in arrival order.
func (m *Manager) Dispatch() int {
	if lost := m.inbox.Dropped(); lost > 0 {
		m.log.Warn("events dropped", zap.Uint32("count", lost))
	}
	return m.inbox.Drain(func(ev event.Event) {
		h := m.handlers[ev.Kind]
		if h == nil {
			m.log.Debug("unhandled event", zap.Stringer("kind", ev.Kind))
			return
		}
		h(ev)
	})
}

// Renderable reports whether the window is visible, focused and not iconified.
func (m *Manager) Renderable() bool { return m.state.Renderable() }

// State returns a copy of the runtime state.
func (m *Manager) State() State { return m.state }

// Window returns the managed window.
func (m *Manager) Window() Window { return m.win }

// SetTitle pushes text to the window chrome.
func (m *Manager) SetTitle(title string) {
	if m.closed {
		return
	}
	m.win.SetTitle(title)
}

// Close destroys the window and terminates the platform. It is safe to call
// more than once.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.win.Destroy()
	m.platform.Terminate()
	m.log.Info("window destroyed")
}

func (m *Manager) onResize(ev event.Event) {
	m.state.WindowSize = [2]int{ev.Width, ev.Height}
}

// Iconify and focus share one render switch: the last event wins, and a
// restored window counts as focused.
func (m *Manager) onIconify(ev event.Event) {
	m.state.Iconified = ev.On
	if !ev.On {
		m.state.Focused = true
	}
}

func (m *Manager) onFocus(ev event.Event) {
	m.state.Focused = ev.On
	if ev.On {
		m.state.Iconified = false
	}
}

func (m *Manager) onClose(event.Event) {
	m.state.ShouldClose = false
	m.state.CloseRequests++
	m.log.Debug("close requested")
	if m.confirm != nil {
		m.confirm()
	}
}

func (m *Manager) onError(err error) {
	m.log.Error("platform error", zap.Error(err))
	if m.debug {
		panic(fmt.Sprintf("platform error: %v", err))
	}
}
