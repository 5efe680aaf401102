//go:build cgo

package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"goxel/input"
)

type keyBinding struct {
	in input.Key
	eb ebiten.Key
}

var keyTable = []keyBinding{
	{input.KeySpace, ebiten.KeySpace},
	{input.KeyApostrophe, ebiten.KeyQuote},
	{input.KeyComma, ebiten.KeyComma},
	{input.KeyMinus, ebiten.KeyMinus},
	{input.KeyPeriod, ebiten.KeyPeriod},
	{input.KeySlash, ebiten.KeySlash},
	{input.Digit(0), ebiten.KeyDigit0},
	{input.Digit(1), ebiten.KeyDigit1},
	{input.Digit(2), ebiten.KeyDigit2},
	{input.Digit(3), ebiten.KeyDigit3},
	{input.Digit(4), ebiten.KeyDigit4},
	{input.Digit(5), ebiten.KeyDigit5},
	{input.Digit(6), ebiten.KeyDigit6},
	{input.Digit(7), ebiten.KeyDigit7},
	{input.Digit(8), ebiten.KeyDigit8},
	{input.Digit(9), ebiten.KeyDigit9},
	{input.KeySemicolon, ebiten.KeySemicolon},
	{input.KeyEqual, ebiten.KeyEqual},
	{input.Letter('a'), ebiten.KeyA},
	{input.Letter('b'), ebiten.KeyB},
	{input.Letter('c'), ebiten.KeyC},
	{input.Letter('d'), ebiten.KeyD},
	{input.Letter('e'), ebiten.KeyE},
	{input.Letter('f'), ebiten.KeyF},
	{input.Letter('g'), ebiten.KeyG},
	{input.Letter('h'), ebiten.KeyH},
	{input.Letter('i'), ebiten.KeyI},
	{input.Letter('j'), ebiten.KeyJ},
	{input.Letter('k'), ebiten.KeyK},
	{input.Letter('l'), ebiten.KeyL},
	{input.Letter('m'), ebiten.KeyM},
	{input.Letter('n'), ebiten.KeyN},
	{input.Letter('o'), ebiten.KeyO},
	{input.Letter('p'), ebiten.KeyP},
	{input.Letter('q'), ebiten.KeyQ},
	{input.Letter('r'), ebiten.KeyR},
	{input.Letter('s'), ebiten.KeyS},
	{input.Letter('t'), ebiten.KeyT},
	{input.Letter('u'), ebiten.KeyU},
	{input.Letter('v'), ebiten.KeyV},
	{input.Letter('w'), ebiten.KeyW},
	{input.Letter('x'), ebiten.KeyX},
	{input.Letter('y'), ebiten.KeyY},
	{input.Letter('z'), ebiten.KeyZ},
	{input.KeyLeftBracket, ebiten.KeyBracketLeft},
	{input.KeyBackslash, ebiten.KeyBackslash},
	{input.KeyRightBracket, ebiten.KeyBracketRight},
	{input.KeyGraveAccent, ebiten.KeyBackquote},

	{input.KeyEscape, ebiten.KeyEscape},
	{input.KeyEnter, ebiten.KeyEnter},
	{input.KeyTab, ebiten.KeyTab},
	{input.KeyBackspace, ebiten.KeyBackspace},
	{input.KeyInsert, ebiten.KeyInsert},
	{input.KeyDelete, ebiten.KeyDelete},
	{input.KeyRight, ebiten.KeyArrowRight},
	{input.KeyLeft, ebiten.KeyArrowLeft},
	{input.KeyDown, ebiten.KeyArrowDown},
	{input.KeyUp, ebiten.KeyArrowUp},
	{input.KeyPageUp, ebiten.KeyPageUp},
	{input.KeyPageDown, ebiten.KeyPageDown},
	{input.KeyHome, ebiten.KeyHome},
	{input.KeyEnd, ebiten.KeyEnd},
	{input.Function(1), ebiten.KeyF1},
	{input.Function(2), ebiten.KeyF2},
	{input.Function(3), ebiten.KeyF3},
	{input.Function(4), ebiten.KeyF4},
	{input.Function(5), ebiten.KeyF5},
	{input.Function(6), ebiten.KeyF6},
	{input.Function(7), ebiten.KeyF7},
	{input.Function(8), ebiten.KeyF8},
	{input.Function(9), ebiten.KeyF9},
	{input.Function(10), ebiten.KeyF10},
	{input.Function(11), ebiten.KeyF11},
	{input.Function(12), ebiten.KeyF12},

	{input.KeyLeftShift, ebiten.KeyShiftLeft},
	{input.KeyLeftControl, ebiten.KeyControlLeft},
	{input.KeyLeftAlt, ebiten.KeyAltLeft},
	{input.KeyLeftSuper, ebiten.KeyMetaLeft},
	{input.KeyRightShift, ebiten.KeyShiftRight},
	{input.KeyRightControl, ebiten.KeyControlRight},
	{input.KeyRightAlt, ebiten.KeyAltRight},
	{input.KeyRightSuper, ebiten.KeyMetaRight},
	{input.KeyMenu, ebiten.KeyContextMenu},
}

var mouseButtons = [input.ButtonCount]ebiten.MouseButton{
	input.ButtonPrimary:   ebiten.MouseButtonLeft,
	input.ButtonMiddle:    ebiten.MouseButtonMiddle,
	input.ButtonSecondary: ebiten.MouseButtonRight,
}
