package event

import "io/fs"

// Kind identifies an event class delivered by the windowing layer.
type Kind uint8

const (
	KindNone Kind = iota
	KindScroll
	KindDrop
	KindChar
	KindClose
	KindResize
	KindIconify
	KindFocus

	// KindCount is the number of event classes, KindNone included.
	KindCount
)

var kindNames = [KindCount]string{
	KindNone:    "none",
	KindScroll:  "scroll",
	KindDrop:    "drop",
	KindChar:    "char",
	KindClose:   "close",
	KindResize:  "resize",
	KindIconify: "iconify",
	KindFocus:   "focus",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Event is one platform notification. Only the fields of its Kind are set.
type Event struct {
	Kind Kind

	// Scroll offsets.
	X, Y float64

	// Char.
	Rune rune

	// Drop: names inside FS.
	Paths []string
	FS    fs.FS

	// Resize: window size in window coordinates.
	Width, Height int

	// Iconify: iconified; Focus: focused.
	On bool
}

func Scroll(x, y float64) Event    { return Event{Kind: KindScroll, X: x, Y: y} }
func Char(r rune) Event            { return Event{Kind: KindChar, Rune: r} }
func Close() Event                 { return Event{Kind: KindClose} }
func Resize(w, h int) Event        { return Event{Kind: KindResize, Width: w, Height: h} }
func Iconify(iconified bool) Event { return Event{Kind: KindIconify, On: iconified} }
func Focus(focused bool) Event     { return Event{Kind: KindFocus, On: focused} }
func Drop(fsys fs.FS, paths []string) Event {
	return Event{Kind: KindDrop, FS: fsys, Paths: append([]string(nil), paths...)}
}
