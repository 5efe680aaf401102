package app

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"go.uber.org/zap"

	"goxel/clock"
	"goxel/config"
	"goxel/event"
	"goxel/hal"
	"goxel/input"
	"goxel/internal/buildinfo"
	"goxel/internal/logging"
	"goxel/internal/options"
)

// Setup is everything the interactive loop needs besides the platform.
type Setup struct {
	Config options.Config
	Prefs  config.Prefs
	Engine Engine
	Log    *zap.Logger

	// Debug runs the engine self test at startup and makes platform errors
	// fatal.
	Debug bool
	// Now is the clock source, time.Now when nil.
	Now func() time.Time
	// Icons overrides the embedded icon set.
	Icons []image.Image
}

// Context is the state of one interactive session. Event handlers close
// over it; nothing lives in package variables.
type Context struct {
	Config options.Config
	Prefs  config.Prefs
	Log    *zap.Logger

	Window *hal.Manager
	Engine Engine
	Clock  *clock.Clock
	Input  *input.Aggregator
	// Frame is the single input snapshot, reset around every frame.
	Frame input.Frame
	State State

	clear    color.RGBA
	released bool
}

// Start opens the window, wires the input handlers and brings the engine
// up. On success the context is in StateRunning.
func Start(p hal.Platform, s Setup) (*Context, error) {
	log := logging.OrNop(s.Log)
	c := &Context{
		Config: s.Config,
		Prefs:  s.Prefs,
		Log:    log.Named("loop"),
		Engine: s.Engine,
		Input:  input.NewAggregator(s.Config.Scale),
		clear:  s.Prefs.Clear(),
	}

	m, err := hal.Open(p, hal.Config{
		Title:       buildinfo.Product,
		VSync:       s.Prefs.VSync,
		TPS:         s.Prefs.TPS,
		Icons:       s.Icons,
		ConfirmQuit: s.Engine.RequestQuitConfirmation,
		Debug:       s.Debug,
	}, log)
	if err != nil {
		return nil, err
	}
	c.Window = m

	for _, kind := range []event.Kind{event.KindScroll, event.KindChar, event.KindDrop} {
		if err := m.Handle(kind, c.Input.Handle); err != nil {
			m.Close()
			return nil, err
		}
	}

	if err := c.Engine.Init(Callbacks{SetTitle: m.SetTitle}); err != nil {
		m.Close()
		return nil, fmt.Errorf("init engine: %w", err)
	}
	if s.Debug || s.Prefs.SelfTest {
		if err := c.Engine.SelfTest(); err != nil {
			c.shutdown()
			return nil, fmt.Errorf("self test: %w", err)
		}
		c.Log.Debug("self test passed")
		c.Engine.Reset()
	}
	if path := s.Config.Input; path != "" {
		if err := c.Engine.Import(path); err != nil {
			c.Log.Warn("import failed", zap.String("path", path), zap.Error(err))
		}
	}

	// The clock starts with the first iteration, not with window creation.
	c.Clock = clock.New(s.Now)
	c.State = StateRunning
	return c, nil
}

// RunInteractive starts a session and runs it until the engine quits. The
// error is only set when the session could not start.
func RunInteractive(p hal.Platform, s Setup) (int, error) {
	c, err := Start(p, s)
	if err != nil {
		return 1, err
	}
	return c.Run(), nil
}

// Run steps the loop until it closes, then releases everything and returns
// the exit status.
func (c *Context) Run() int {
	for c.State != StateClosing {
		c.Step()
	}
	return c.shutdown()
}

// Step runs one iteration of the current state and returns the next one.
// Quit requests are only observed between iterations.
func (c *Context) Step() State {
	switch c.State {
	case StateRunning:
		c.frame()
	case StateIdleWaiting:
		c.idle()
	}
	return c.State
}

func (c *Context) frame() {
	if c.Clock.Tick() && c.Prefs.Diagnostics {
		c.Window.SetTitle(c.Clock.Title())
	}

	c.Window.Poll()
	if c.Engine.QuitRequested() {
		c.State = StateClosing
		return
	}
	if !c.Window.Renderable() {
		c.State = StateIdleWaiting
		return
	}

	win := c.Window.Window()
	c.Input.Collect(win, &c.Frame)
	win.Clear(c.clear)
	c.Engine.Advance(&c.Frame)
	c.Engine.Render(win.Canvas())
	c.Frame.Reset()
	win.Present()

	if c.Engine.QuitRequested() {
		c.State = StateClosing
	}
}

func (c *Context) idle() {
	c.Window.Wait()
	c.Window.Poll()
	if c.Engine.QuitRequested() {
		c.State = StateClosing
		return
	}
	c.State = StateRunning
}

func (c *Context) shutdown() int {
	if c.released {
		return 0
	}
	c.released = true
	c.State = StateClosing
	c.Engine.Release()
	c.Window.Close()
	return 0
}

// RunBatch converts Config.Input into Config.Export without opening a
// window and returns the export status.
func RunBatch(cfg options.Config, eng Engine, log *zap.Logger) int {
	log = logging.OrNop(log).Named("batch")
	if cfg.Input == "" {
		log.Error("trying to export an empty image", zap.String("export", cfg.Export))
		return -1
	}

	if err := eng.Init(Callbacks{SetTitle: func(string) {}}); err != nil {
		log.Error("init engine", zap.Error(err))
		return -1
	}
	defer eng.Release()

	if err := eng.Import(cfg.Input); err != nil {
		log.Error("import failed", zap.String("path", cfg.Input), zap.Error(err))
	}
	status := eng.Export(cfg.Export)
	if status != 0 {
		log.Warn("export failed", zap.String("path", cfg.Export), zap.Int("status", status))
	} else {
		log.Info("exported", zap.String("input", cfg.Input), zap.String("path", cfg.Export))
	}
	return status
}
