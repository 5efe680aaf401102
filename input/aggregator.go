package input

import (
	"io/fs"

	"goxel/event"
)

// Sampler is the synchronous window state read once per frame, after the
// platform events have been polled.
type Sampler interface {
	WindowSize() (w, h int)
	FramebufferSize() (w, h int)
	KeyPressed(k Key) bool
	CursorPosition() (x, y float64)
	MouseButtonPressed(b Button) bool
}

// Aggregator turns queued input events plus sampled device state into one
// Frame. Events received between two frames are latched until the next
// Collect.
type Aggregator struct {
	uiScale float64

	scroll  float64
	text    []rune
	dropped []string
	dropFS  fs.FS
}

// NewAggregator returns an aggregator applying the UI scale multiplier.
func NewAggregator(uiScale float64) *Aggregator {
	if uiScale <= 0 {
		uiScale = 1
	}
	return &Aggregator{uiScale: uiScale}
}

// Handle latches one input event. Non-input events are ignored.
func (a *Aggregator) Handle(ev event.Event) {
	switch ev.Kind {
	case event.KindScroll:
		a.scroll = ev.Y
	case event.KindChar:
		a.text = append(a.text, ev.Rune)
	case event.KindDrop:
		a.dropped = append(a.dropped, ev.Paths...)
		if ev.FS != nil {
			a.dropFS = ev.FS
		}
	}
}

// Collect resets dst and fills it from s and the latched events.
func (a *Aggregator) Collect(s Sampler, dst *Frame) {
	dst.Reset()

	winW, winH := s.WindowSize()
	fbW, _ := s.FramebufferSize()
	dst.WindowSize = [2]int{winW, winH}
	dst.Scale = a.uiScale
	if winW > 0 && fbW > 0 {
		dst.Scale = a.uiScale * float64(fbW) / float64(winW)
	}

	for k := KeyFirst; k <= KeyLast; k++ {
		dst.Keys[k] = s.KeyPressed(k)
	}

	p := &dst.Pointers[0]
	p.X, p.Y = s.CursorPosition()
	for b := ButtonPrimary; b < ButtonCount; b++ {
		p.Down[b] = s.MouseButtonPressed(b)
	}

	dst.Scroll = a.scroll
	dst.Text = a.text
	dst.Dropped = a.dropped
	dst.DropFS = a.dropFS

	a.scroll = 0
	a.text = nil
	a.dropped = nil
	a.dropFS = nil
}
