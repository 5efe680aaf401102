// Package haltest provides an in-memory hal.Platform for tests.
package haltest

import (
	"image"
	"image/color"
	"image/draw"

	"goxel/event"
	"goxel/hal"
	"goxel/input"
)

// Platform records every call made through hal.Platform.
type Platform struct {
	Display   [2]int
	DisplayOK bool
	CreateErr error

	Config       hal.WindowConfig
	Win          *Window
	Created      int
	Terminated   int
	ErrorHandler func(error)
}

// NewPlatform returns a platform reporting a w x h display.
func NewPlatform(w, h int) *Platform {
	return &Platform{Display: [2]int{w, h}, DisplayOK: true}
}

func (p *Platform) DisplaySize() (int, int, bool) {
	return p.Display[0], p.Display[1], p.DisplayOK
}

func (p *Platform) CreateWindow(cfg hal.WindowConfig, inbox *event.Inbox) (hal.Window, error) {
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	p.Created++
	p.Config = cfg
	if p.Win == nil {
		p.Win = NewWindow(cfg.Width, cfg.Height)
	}
	p.Win.inbox = inbox
	return p.Win, nil
}

func (p *Platform) SetErrorHandler(fn func(error)) { p.ErrorHandler = fn }
func (p *Platform) Terminate()                     { p.Terminated++ }

// Window is a scriptable hal.Window.
type Window struct {
	inbox *event.Inbox

	Size      [2]int
	FB        [2]int
	IsVisible bool
	Keys      map[input.Key]bool
	Cursor    [2]float64
	Buttons   [input.ButtonCount]bool

	// OnPoll and OnWait run inside PollEvents / WaitEvents before queued
	// events are delivered, so tests can script what the platform reports.
	OnPoll func(w *Window)
	OnWait func(w *Window)

	pending []event.Event
	canvas  *image.RGBA

	Polls, Waits     int
	Clears, Presents int
	Titles           []string
	Icons            []image.Image
	Destroyed        bool
}

// NewWindow returns a visible window with a framebuffer equal to its size.
func NewWindow(w, h int) *Window {
	return &Window{Size: [2]int{w, h}, FB: [2]int{w, h}, IsVisible: true}
}

// Queue schedules events for the next PollEvents or WaitEvents.
func (w *Window) Queue(evs ...event.Event) {
	w.pending = append(w.pending, evs...)
}

func (w *Window) deliver() {
	for _, ev := range w.pending {
		if w.inbox != nil {
			w.inbox.Post(ev)
		}
	}
	w.pending = nil
}

func (w *Window) PollEvents() {
	w.Polls++
	if w.OnPoll != nil {
		w.OnPoll(w)
	}
	w.deliver()
}

func (w *Window) WaitEvents() {
	w.Waits++
	if w.OnWait != nil {
		w.OnWait(w)
	}
}

func (w *Window) Visible() bool                  { return w.IsVisible }
func (w *Window) WindowSize() (int, int)         { return w.Size[0], w.Size[1] }
func (w *Window) FramebufferSize() (int, int)    { return w.FB[0], w.FB[1] }
func (w *Window) KeyPressed(k input.Key) bool    { return w.Keys[k] }
func (w *Window) CursorPosition() (x, y float64) { return w.Cursor[0], w.Cursor[1] }
func (w *Window) MouseButtonPressed(b input.Button) bool {
	return int(b) < len(w.Buttons) && w.Buttons[b]
}

func (w *Window) Canvas() *image.RGBA {
	if w.canvas == nil || w.canvas.Rect.Dx() != w.FB[0] || w.canvas.Rect.Dy() != w.FB[1] {
		w.canvas = image.NewRGBA(image.Rect(0, 0, w.FB[0], w.FB[1]))
	}
	return w.canvas
}

func (w *Window) Clear(c color.RGBA) {
	w.Clears++
	cv := w.Canvas()
	draw.Draw(cv, cv.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func (w *Window) Present()                     { w.Presents++ }
func (w *Window) SetTitle(title string)        { w.Titles = append(w.Titles, title) }
func (w *Window) SetIcons(icons []image.Image) { w.Icons = icons }
func (w *Window) Destroy()                     { w.Destroyed = true }
