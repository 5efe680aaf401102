package hal_test

import (
	"errors"
	"image"
	"strings"
	"testing"

	"goxel/event"
	"goxel/hal"
	"goxel/hal/haltest"
)

func open(t *testing.T, p *haltest.Platform, cfg hal.Config) *hal.Manager {
	t.Helper()
	if cfg.Icons == nil {
		cfg.Icons = []image.Image{image.NewRGBA(image.Rect(0, 0, 16, 16))}
	}
	m, err := hal.Open(p, cfg, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return m
}

func TestOpenUsesDisplaySize(t *testing.T) {
	p := haltest.NewPlatform(1920, 1080)
	m := open(t, p, hal.Config{Title: "Goxel2", TPS: 60})

	if p.Created != 1 {
		t.Fatalf("Created = %d, want 1", p.Created)
	}
	if p.Config.Width != 1920 || p.Config.Height != 1080 || p.Config.Title != "Goxel2" {
		t.Fatalf("WindowConfig = %+v", p.Config)
	}
	if p.ErrorHandler == nil {
		t.Fatal("error handler not installed")
	}
	st := m.State()
	if st.WindowSize != [2]int{1920, 1080} || !st.Visible || !st.Focused || st.Iconified {
		t.Fatalf("State() = %+v", st)
	}
	if !m.Renderable() {
		t.Fatal("Renderable() = false on a fresh window")
	}
}

func TestOpenFallsBackTo640x480(t *testing.T) {
	p := haltest.NewPlatform(0, 0)
	p.DisplayOK = false
	open(t, p, hal.Config{})
	if p.Config.Width != 640 || p.Config.Height != 480 {
		t.Fatalf("WindowConfig = %dx%d, want 640x480", p.Config.Width, p.Config.Height)
	}

	p = haltest.NewPlatform(0, 900)
	open(t, p, hal.Config{})
	if p.Config.Width != 640 || p.Config.Height != 900 {
		t.Fatalf("WindowConfig = %dx%d, want 640x900", p.Config.Width, p.Config.Height)
	}
}

func TestOpenAttachesEmbeddedIcons(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	if _, err := hal.Open(p, hal.Config{}, nil); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := len(p.Win.Icons); got != 7 {
		t.Fatalf("icons = %d, want 7", got)
	}
}

func TestOpenCreateError(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	p.CreateErr = hal.ErrNoWindow
	_, err := hal.Open(p, hal.Config{}, nil)
	if !errors.Is(err, hal.ErrNoWindow) {
		t.Fatalf("Open() error = %v, want ErrNoWindow", err)
	}
}

func TestHandleOnePerClass(t *testing.T) {
	m := open(t, haltest.NewPlatform(800, 600), hal.Config{})

	if err := m.Handle(event.KindScroll, func(event.Event) {}); err != nil {
		t.Fatalf("Handle(scroll) error = %v", err)
	}
	if err := m.Handle(event.KindScroll, func(event.Event) {}); !errors.Is(err, hal.ErrHandlerRegistered) {
		t.Fatalf("second Handle(scroll) error = %v, want ErrHandlerRegistered", err)
	}
	if err := m.Handle(event.KindFocus, func(event.Event) {}); !errors.Is(err, hal.ErrHandlerRegistered) {
		t.Fatalf("Handle(focus) error = %v, want lifecycle handler already registered", err)
	}
	if err := m.Handle(event.KindNone, func(event.Event) {}); err == nil {
		t.Fatal("Handle(none) error = nil")
	}
}

func TestPollDispatchesInOrder(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	m := open(t, p, hal.Config{})

	var text []rune
	if err := m.Handle(event.KindChar, func(ev event.Event) { text = append(text, ev.Rune) }); err != nil {
		t.Fatal(err)
	}

	p.Win.Queue(event.Char('o'), event.Resize(1024, 768), event.Char('k'))
	if n := m.Poll(); n != 3 {
		t.Fatalf("Poll() = %d, want 3", n)
	}
	if string(text) != "ok" {
		t.Fatalf("text = %q, want ok", string(text))
	}
	if got := m.State().WindowSize; got != [2]int{1024, 768} {
		t.Fatalf("WindowSize = %v, want [1024 768]", got)
	}

	if n := m.Poll(); n != 0 {
		t.Fatalf("second Poll() = %d, want 0", n)
	}
}

func TestIconifyAndFocus(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	m := open(t, p, hal.Config{})

	p.Win.Queue(event.Iconify(true))
	m.Poll()
	if m.Renderable() {
		t.Fatal("Renderable() = true while iconified")
	}

	p.Win.Queue(event.Focus(true))
	m.Poll()
	if !m.Renderable() {
		t.Fatalf("Renderable() = false after focus, state %+v", m.State())
	}

	p.Win.Queue(event.Focus(false))
	m.Poll()
	if m.Renderable() {
		t.Fatal("Renderable() = true while unfocused")
	}

	p.Win.Queue(event.Iconify(true), event.Iconify(false))
	m.Poll()
	if !m.Renderable() {
		t.Fatalf("Renderable() = false after restore, state %+v", m.State())
	}

	p.Win.IsVisible = false
	m.Poll()
	if m.Renderable() {
		t.Fatal("Renderable() = true for a hidden window")
	}
}

func TestCloseRaisesConfirmation(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	asked := 0
	m := open(t, p, hal.Config{ConfirmQuit: func() { asked++ }})

	p.Win.Queue(event.Close(), event.Close())
	m.Poll()

	if asked != 2 {
		t.Fatalf("confirmations = %d, want 2", asked)
	}
	st := m.State()
	if st.ShouldClose {
		t.Fatal("ShouldClose = true, want native close suppressed")
	}
	if st.CloseRequests != 2 {
		t.Fatalf("CloseRequests = %d, want 2", st.CloseRequests)
	}
	if p.Win.Destroyed {
		t.Fatal("window destroyed by a close request")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	m := open(t, p, hal.Config{})

	m.SetTitle("before")
	m.Close()
	m.Close()
	m.SetTitle("after")

	if !p.Win.Destroyed || p.Terminated != 1 {
		t.Fatalf("Destroyed = %v, Terminated = %d", p.Win.Destroyed, p.Terminated)
	}
	if len(p.Win.Titles) != 1 || p.Win.Titles[0] != "before" {
		t.Fatalf("Titles = %q", p.Win.Titles)
	}
}

func TestPlatformErrorPanicsInDebug(t *testing.T) {
	p := haltest.NewPlatform(800, 600)
	open(t, p, hal.Config{})
	p.ErrorHandler(errors.New("lost context")) // logged only

	p = haltest.NewPlatform(800, 600)
	open(t, p, hal.Config{Debug: true})
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "lost context") {
			t.Fatalf("recover() = %v, want platform error panic", r)
		}
	}()
	p.ErrorHandler(errors.New("lost context"))
}
