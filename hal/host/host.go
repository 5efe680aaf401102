//go:build cgo

// Package host serves hal windows with ebiten.
//
// Ebiten owns the main goroutine and calls back into the game once per
// tick, while the application loop runs on its own goroutine and expects
// to poll. The two meet in a lockstep.Gate: the loop parks in PollEvents
// until a tick samples the device and posts events, and the tick parks until
// the loop asks for the next one. The loop therefore only touches the window
// while ebiten is blocked inside Update, and Draw only runs while the loop
// is parked. Ticks keep coming while the window is unfocused or minimised,
// so focus and iconify changes reach WaitEvents.
package host

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"goxel/event"
	"goxel/hal"
	"goxel/input"
	"goxel/internal/lockstep"
)

var errWindowLost = errors.New("window closed by the platform")

// Run runs body on a worker goroutine and serves the windows it creates
// from the calling goroutine, which must be the main one. It returns the
// exit code of body.
func Run(body func(hal.Platform) int) int {
	p := &platform{windows: make(chan *window)}
	done := make(chan int, 1)
	go func() { done <- body(p) }()

	for {
		select {
		case code := <-done:
			return code
		case w := <-p.windows:
			err := ebiten.RunGame(&game{w: w})
			w.gate.Stop()
			if w.gate.Quitting() {
				continue
			}
			if err == nil {
				err = errWindowLost
			}
			p.report(fmt.Errorf("run window: %w", err))
			return 1
		}
	}
}

type platform struct {
	windows chan *window

	mu      sync.Mutex
	onError func(error)
}

func (p *platform) DisplaySize() (int, int, bool) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0, false
	}
	w, h := m.Size()
	return w, h, w > 0 && h > 0
}

func (p *platform) CreateWindow(cfg hal.WindowConfig, inbox *event.Inbox) (hal.Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetTPS(tps)
	ebiten.SetRunnableOnUnfocused(true)

	w := newWindow(cfg, inbox)
	p.windows <- w
	return w, nil
}

func (p *platform) SetErrorHandler(fn func(error)) {
	p.mu.Lock()
	p.onError = fn
	p.mu.Unlock()
}

// Terminate is a no-op: ebiten releases the platform when RunGame returns.
func (p *platform) Terminate() {}

func (p *platform) report(err error) {
	p.mu.Lock()
	fn := p.onError
	p.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// snapshot is the device state sampled at one tick.
type snapshot struct {
	winW, winH int
	scale      float64
	focused    bool
	minimized  bool
	keys       [input.KeyCount]bool
	cursor     [2]float64
	buttons    [input.ButtonCount]bool
}

type window struct {
	inbox *event.Inbox
	gate  *lockstep.Gate

	// Written by the game goroutine while the loop is parked, read by the
	// loop while the game is parked.
	cur    snapshot
	canvas *image.RGBA
	dirty  bool
	chars  []rune
}

func newWindow(cfg hal.WindowConfig, inbox *event.Inbox) *window {
	return &window{
		inbox: inbox,
		gate:  lockstep.New(),
		cur:   snapshot{winW: cfg.Width, winH: cfg.Height, scale: 1, focused: true},
	}
}

func (w *window) PollEvents() { w.gate.Step() }

// WaitEvents steps ticks until one of them posts an event.
func (w *window) WaitEvents() {
	w.gate.StepUntil(func() bool { return w.inbox.Len() > 0 })
}

// Visible is false once the window is minimised or gone.
func (w *window) Visible() bool {
	return !w.cur.minimized && !w.gate.Stopped()
}

func (w *window) WindowSize() (int, int) { return w.cur.winW, w.cur.winH }

func (w *window) FramebufferSize() (int, int) {
	return int(float64(w.cur.winW) * w.cur.scale), int(float64(w.cur.winH) * w.cur.scale)
}

func (w *window) KeyPressed(k input.Key) bool {
	return int(k) < len(w.cur.keys) && w.cur.keys[k]
}

func (w *window) CursorPosition() (float64, float64) { return w.cur.cursor[0], w.cur.cursor[1] }

func (w *window) MouseButtonPressed(b input.Button) bool {
	return int(b) < len(w.cur.buttons) && w.cur.buttons[b]
}

func (w *window) Canvas() *image.RGBA {
	fw, fh := w.FramebufferSize()
	if w.canvas == nil || w.canvas.Rect.Dx() != fw || w.canvas.Rect.Dy() != fh {
		w.canvas = image.NewRGBA(image.Rect(0, 0, fw, fh))
	}
	return w.canvas
}

func (w *window) Clear(c color.RGBA) {
	cv := w.Canvas()
	draw.Draw(cv, cv.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func (w *window) Present()                     { w.dirty = true }
func (w *window) SetTitle(title string)        { ebiten.SetWindowTitle(title) }
func (w *window) SetIcons(icons []image.Image) { ebiten.SetWindowIcon(icons) }
func (w *window) Destroy()                     { w.gate.Quit() }

// sample records the device state and posts what changed since the
// previous tick.
func (w *window) sample() {
	prev := w.cur
	s := &w.cur

	s.winW, s.winH = ebiten.WindowSize()
	s.scale = deviceScale()
	s.focused = ebiten.IsFocused()
	s.minimized = ebiten.IsWindowMinimized()
	for _, b := range keyTable {
		s.keys[b.in] = ebiten.IsKeyPressed(b.eb)
	}
	cx, cy := ebiten.CursorPosition()
	s.cursor = [2]float64{float64(cx) / s.scale, float64(cy) / s.scale}
	for i, b := range mouseButtons {
		s.buttons[i] = ebiten.IsMouseButtonPressed(b)
	}

	if s.focused != prev.focused {
		w.inbox.Post(event.Focus(s.focused))
	}
	if s.minimized != prev.minimized {
		w.inbox.Post(event.Iconify(s.minimized))
	}
	if s.winW != prev.winW || s.winH != prev.winH {
		w.inbox.Post(event.Resize(s.winW, s.winH))
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		w.inbox.Post(event.Scroll(dx, dy))
	}
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.inbox.Post(event.Char(r))
	}
	if fsys := ebiten.DroppedFiles(); fsys != nil {
		w.postDrop(fsys)
	}
	if ebiten.IsWindowBeingClosed() {
		w.inbox.Post(event.Close())
	}
}

func (w *window) postDrop(fsys fs.FS) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil || len(entries) == 0 {
		return
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Name())
	}
	w.inbox.Post(event.Drop(fsys, paths))
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

type game struct {
	w   *window
	img *ebiten.Image
}

func (g *game) Update() error {
	if !g.w.gate.Serve(g.w.sample) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if w.dirty && w.canvas != nil {
		b := w.canvas.Rect
		if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
			if g.img != nil {
				g.img.Deallocate()
			}
			g.img = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.img.WritePixels(w.canvas.Pix)
		w.dirty = false
	}
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := deviceScale()
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}
