package engine

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	defaultWidth  = 64
	defaultHeight = 64
)

// Document is a single RGBA layer.
type Document struct {
	Name string
	// Path is where the document was imported from, empty for new ones.
	Path  string
	Img   *image.RGBA
	Dirty bool
}

// NewDocument returns a transparent w x h document.
func NewDocument(name string, w, h int) *Document {
	return &Document{Name: name, Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func documentFrom(path string, src image.Image) *Document {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Rect, src, b.Min, draw.Src)
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Document{Name: name, Path: path, Img: img}
}

// Paint sets one pixel and reports whether the document changed.
func (d *Document) Paint(x, y int, c color.RGBA) bool {
	if !(image.Point{X: x, Y: y}).In(d.Img.Rect) {
		return false
	}
	if d.Img.RGBAAt(x, y) == c {
		return false
	}
	d.Img.SetRGBA(x, y, c)
	d.Dirty = true
	return true
}
