package input

import (
	"reflect"
	"testing"
	"testing/fstest"

	"goxel/event"
)

type fakeSampler struct {
	winW, winH int
	fbW, fbH   int
	keys       map[Key]bool
	x, y       float64
	buttons    [ButtonCount]bool
}

func (s *fakeSampler) WindowSize() (int, int)             { return s.winW, s.winH }
func (s *fakeSampler) FramebufferSize() (int, int)        { return s.fbW, s.fbH }
func (s *fakeSampler) KeyPressed(k Key) bool              { return s.keys[k] }
func (s *fakeSampler) CursorPosition() (float64, float64) { return s.x, s.y }
func (s *fakeSampler) MouseButtonPressed(b Button) bool   { return s.buttons[b] }

func TestCollectScaleCorrection(t *testing.T) {
	a := NewAggregator(1.5)
	s := &fakeSampler{winW: 800, winH: 600, fbW: 1600, fbH: 1200}

	var f Frame
	a.Collect(s, &f)

	if f.Scale != 3 {
		t.Fatalf("Scale = %v, want 3", f.Scale)
	}
	if f.WindowSize != [2]int{800, 600} {
		t.Fatalf("WindowSize = %v, want [800 600]", f.WindowSize)
	}
}

func TestCollectZeroWindowWidthKeepsUIScale(t *testing.T) {
	a := NewAggregator(2)
	var f Frame
	a.Collect(&fakeSampler{fbW: 100}, &f)
	if f.Scale != 2 {
		t.Fatalf("Scale = %v, want 2", f.Scale)
	}
}

func TestNewAggregatorRejectsNonPositiveScale(t *testing.T) {
	a := NewAggregator(0)
	var f Frame
	a.Collect(&fakeSampler{}, &f)
	if f.Scale != 1 {
		t.Fatalf("Scale = %v, want 1", f.Scale)
	}
}

func TestCollectSamplesKeysAndPointer(t *testing.T) {
	a := NewAggregator(1)
	s := &fakeSampler{
		winW: 10, winH: 10, fbW: 10, fbH: 10,
		keys:    map[Key]bool{KeySpace: true, KeyMenu: true, Letter('q'): true},
		x:       12.5,
		y:       7,
		buttons: [ButtonCount]bool{ButtonMiddle: true},
	}

	var f Frame
	a.Collect(s, &f)

	for _, k := range []Key{KeySpace, KeyMenu, KeyA + ('Q' - 'A')} {
		if !f.Pressed(k) {
			t.Fatalf("Pressed(%d) = false, want true", k)
		}
	}
	if f.Pressed(KeyEscape) {
		t.Fatal("Pressed(KeyEscape) = true, want false")
	}
	p := f.Pointers[0]
	if p.X != 12.5 || p.Y != 7 {
		t.Fatalf("pointer = (%v,%v), want (12.5,7)", p.X, p.Y)
	}
	if p.Down[ButtonPrimary] || !p.Down[ButtonMiddle] || p.Down[ButtonSecondary] {
		t.Fatalf("pointer buttons = %v", p.Down)
	}
}

func TestCollectMovesLatchedEventsOnce(t *testing.T) {
	a := NewAggregator(1)
	drops := fstest.MapFS{"a.png": &fstest.MapFile{Data: []byte("x")}}

	a.Handle(event.Scroll(0, 1))
	a.Handle(event.Scroll(0, -2))
	a.Handle(event.Char('h'))
	a.Handle(event.Char('i'))
	a.Handle(event.Drop(drops, []string{"a.png"}))
	a.Handle(event.Focus(true))

	var f Frame
	a.Collect(&fakeSampler{}, &f)

	if f.Scroll != -2 {
		t.Fatalf("Scroll = %v, want -2 (last event wins)", f.Scroll)
	}
	if string(f.Text) != "hi" {
		t.Fatalf("Text = %q, want %q", string(f.Text), "hi")
	}
	if len(f.Dropped) != 1 || f.Dropped[0] != "a.png" || f.DropFS == nil {
		t.Fatalf("Dropped = %v, DropFS = %v", f.Dropped, f.DropFS)
	}

	a.Collect(&fakeSampler{}, &f)
	if f.Scroll != 0 || f.Text != nil || f.Dropped != nil || f.DropFS != nil {
		t.Fatalf("second Collect leaked events: scroll=%v text=%q dropped=%v", f.Scroll, string(f.Text), f.Dropped)
	}
}

func TestCollectClearsPreviousFrame(t *testing.T) {
	a := NewAggregator(1)
	f := Frame{Scroll: 4, Text: []rune("old"), Dropped: []string{"old.png"}}
	f.Keys[KeyEnter] = true
	f.Pointers[2].X = 9

	a.Collect(&fakeSampler{}, &f)
	if f.Scroll != 0 || f.Text != nil || f.Dropped != nil {
		t.Fatal("Collect kept latched fields of the previous frame")
	}
	if f.Keys[KeyEnter] || f.Pointers[2].X != 0 {
		t.Fatal("Collect kept sampled fields of the previous frame")
	}

	f.Reset()
	if !reflect.DeepEqual(f, Frame{}) {
		t.Fatal("Reset() left data behind")
	}
}

func TestKeyHelpers(t *testing.T) {
	if Letter('a') != KeyA || Letter('Z') != KeyZ || Letter('1') != 0 {
		t.Fatal("Letter mapping mismatch")
	}
	if Digit(9) != Key9 || Digit(10) != 0 {
		t.Fatal("Digit mapping mismatch")
	}
	if Function(12) != KeyF12 || Function(0) != 0 {
		t.Fatal("Function mapping mismatch")
	}
}
