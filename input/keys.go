package input

// Key is a platform-neutral key code. Printable keys use their ASCII value,
// the rest follow the usual desktop numbering (Escape = 256 ...).
type Key uint16

const (
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269
	KeyF1        Key = 290
	KeyF12       Key = 301

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348

	KeyFirst = KeySpace
	KeyLast  = KeyMenu
	KeyCount = int(KeyLast) + 1
)

// Letter returns the key code of an ASCII letter, upper or lower case.
func Letter(r rune) Key {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0
	}
	return Key(r)
}

// Digit returns the key code of the digit d (0-9).
func Digit(d int) Key {
	if d < 0 || d > 9 {
		return 0
	}
	return Key0 + Key(d)
}

// Function returns the key code of F1..F12.
func Function(n int) Key {
	if n < 1 || n > 12 {
		return 0
	}
	return KeyF1 + Key(n-1)
}

// Button identifies one of the three tracked pointer buttons.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary

	ButtonCount
)
