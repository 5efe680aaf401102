package engine

import (
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var overlayFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// canvasDisplay lets tinyfont draw on an RGBA canvas.
type canvasDisplay struct {
	img *image.RGBA
}

func (d canvasDisplay) Size() (x, y int16) {
	if d.img == nil {
		return 0, 0
	}
	return int16(d.img.Rect.Dx()), int16(d.img.Rect.Dy())
}

func (d canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.img == nil {
		return
	}
	p := image.Point{X: int(x), Y: int(y)}
	if !p.In(d.img.Rect) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
}

func (d canvasDisplay) Display() error { return nil }

func fontMetrics(font tinyfont.Fonter) (width, height int16) {
	_, outbox := tinyfont.LineWidth(font, "0")
	return int16(outbox), int16(font.GetYAdvance())
}

// textBox draws lines on a filled box anchored at (x, y), wrapping lines
// longer than the canvas.
func textBox(dst *image.RGBA, x, y int, lines []string, fg, bg color.RGBA) {
	d := canvasDisplay{img: dst}
	fw, fh := fontMetrics(overlayFont)
	if fw <= 0 || fh <= 0 {
		return
	}

	const pad = 6
	cols := int16(dst.Rect.Dx()-x-2*pad) / fw
	if cols <= 0 {
		return
	}
	var wrapped []string
	for _, line := range lines {
		for {
			chunk, rest := takeRunes(line, cols)
			wrapped = append(wrapped, chunk)
			if rest == "" {
				break
			}
			line = rest
		}
	}

	maxW := 0
	for _, line := range wrapped {
		if n := utf8.RuneCountInString(line); n > maxW {
			maxW = n
		}
	}
	box := image.Rect(x, y, x+maxW*int(fw)+2*pad, y+len(wrapped)*int(fh)+2*pad).Intersect(dst.Rect)
	fill(dst, box, bg)

	ty := int16(y+pad) + fh - 2
	for _, line := range wrapped {
		tinyfont.WriteLine(d, overlayFont, int16(x+pad), ty, line, fg)
		ty += fh
	}
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
