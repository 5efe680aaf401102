// Package engine is a small pixel editor driven by the application loop.
// It stands in for the voxel engine so the shell runs end to end.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"goxel/app"
	"goxel/input"
	"goxel/internal/buildinfo"
	"goxel/internal/logging"
)

const (
	minZoom     = 1
	maxZoom     = 64
	defaultZoom = 8
	panStep     = 8
	checkerCell = 8
)

var palette = [10]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
	{R: 0x40, G: 0xc0, B: 0x40, A: 0xff},
	{R: 0x40, G: 0x60, B: 0xe0, A: 0xff},
	{R: 0xf0, G: 0xd0, B: 0x40, A: 0xff},
	{R: 0x40, G: 0xd0, B: 0xd0, A: 0xff},
	{R: 0xd0, G: 0x40, B: 0xd0, A: 0xff},
	{R: 0xf0, G: 0x90, B: 0x30, A: 0xff},
	{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

var (
	checkerLight = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	checkerDark  = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	overlayFg    = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	overlayBg    = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xe0}
)

// Confirmer asks a yes/no question and blocks until it is answered.
type Confirmer func(title, message string) bool

// Options configures New.
type Options struct {
	Log *zap.Logger
	// Confirm asks before discarding unsaved changes. Without it the engine
	// quits right away.
	Confirm Confirmer
}

// Engine edits one RGBA document.
type Engine struct {
	log      *zap.Logger
	confirm  Confirmer
	setTitle func(string)

	doc   *Document
	zoom  int
	pan   image.Point
	color int
	about bool

	view image.Rectangle
	held [input.KeyCount]bool
	drag bool
	last [2]float64

	quit    bool
	asking  bool
	answers chan bool
}

var _ app.Engine = (*Engine)(nil)

// New returns an engine with no document. Init creates the first one.
func New(opts Options) *Engine {
	return &Engine{
		log:     logging.OrNop(opts.Log).Named("engine"),
		confirm: opts.Confirm,
		zoom:    defaultZoom,
		answers: make(chan bool, 1),
	}
}

func (e *Engine) Init(cb app.Callbacks) error {
	e.setTitle = cb.SetTitle
	e.Reset()
	e.log.Debug("initialized")
	return nil
}

func (e *Engine) Reset() {
	e.doc = NewDocument("untitled", defaultWidth, defaultHeight)
	e.zoom = defaultZoom
	e.pan = image.Point{}
	e.color = 0
	e.about = false
	e.updateTitle()
}

// Document returns the open document, nil before Init and after Release.
func (e *Engine) Document() *Document { return e.doc }

// SelfTest checks painting and the codec round trips on a scratch document.
func (e *Engine) SelfTest() error {
	doc := NewDocument("selftest", 4, 4)
	c := palette[2]
	if !doc.Paint(1, 2, c) || !doc.Dirty {
		return errors.New("paint did not change the document")
	}
	if doc.Paint(1, 2, c) {
		return errors.New("repaint with the same color changed the document")
	}
	if doc.Paint(4, 0, c) {
		return errors.New("paint outside the document")
	}

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		enc, err := encoderFor("selftest" + ext)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := enc(&buf, doc.Img); err != nil {
			return fmt.Errorf("encode %s: %w", ext, err)
		}
		img, err := decode(&buf)
		if err != nil {
			return fmt.Errorf("decode %s: %w", ext, err)
		}
		if got := color.RGBAModel.Convert(img.At(1, 2)).(color.RGBA); got != c {
			return fmt.Errorf("%s round trip: got %v, want %v", ext, got, c)
		}
	}
	return nil
}

func (e *Engine) Advance(in *input.Frame) {
	if in == nil || e.doc == nil {
		return
	}
	pressed := func(k input.Key) bool { return in.Pressed(k) && !e.held[k] }
	ctrl := in.Pressed(input.KeyLeftControl) || in.Pressed(input.KeyRightControl)

	switch {
	case in.Scroll > 0:
		e.setZoom(e.zoom * 2)
	case in.Scroll < 0:
		e.setZoom(e.zoom / 2)
	}

	if in.Pressed(input.KeyLeft) {
		e.pan.X -= panStep
	}
	if in.Pressed(input.KeyRight) {
		e.pan.X += panStep
	}
	if in.Pressed(input.KeyUp) {
		e.pan.Y -= panStep
	}
	if in.Pressed(input.KeyDown) {
		e.pan.Y += panStep
	}

	for _, r := range in.Text {
		if r >= '0' && r <= '9' {
			e.color = int(r - '0')
		}
	}

	ratio := e.ratio(in)
	p := in.Pointers[0]
	if p.Down[input.ButtonMiddle] {
		if e.drag {
			e.pan.X += int((p.X - e.last[0]) * ratio)
			e.pan.Y += int((p.Y - e.last[1]) * ratio)
		}
		e.drag = true
		e.last = [2]float64{p.X, p.Y}
	} else {
		e.drag = false
	}
	if p.Down[input.ButtonPrimary] {
		if x, y, ok := e.docPoint(p.X*ratio, p.Y*ratio); ok {
			clean := !e.doc.Dirty
			if e.doc.Paint(x, y, palette[e.color]) && clean {
				e.updateTitle()
			}
		}
	}

	if pressed(input.Function(1)) {
		e.about = !e.about
	}
	if pressed(input.KeyEscape) || ctrl && pressed(input.Letter('q')) {
		e.RequestQuitConfirmation()
	}
	if ctrl && pressed(input.Letter('s')) {
		e.save()
	}
	if in.DropFS != nil {
		for _, name := range in.Dropped {
			if err := e.importFS(in.DropFS, name); err != nil {
				e.log.Warn("drop import failed", zap.String("name", name), zap.Error(err))
			}
		}
	}

	e.held = in.Keys
}

func (e *Engine) Render(dst *image.RGBA) {
	e.view = dst.Rect
	if e.doc == nil {
		return
	}

	r := e.docRect()
	checker(dst, r)
	draw.NearestNeighbor.Scale(dst, r, e.doc.Img, e.doc.Img.Rect, draw.Over, nil)

	_, fh := fontMetrics(overlayFont)
	status := fmt.Sprintf("%s  %dx  color %d", e.doc.Name, e.zoom, e.color)
	textBox(dst, dst.Rect.Min.X, dst.Rect.Max.Y-int(fh)-12, []string{status}, overlayFg, overlayBg)

	if e.about {
		lines := append(buildinfo.About(), "", "F1 close  Esc quit  Ctrl+S save")
		textBox(dst, dst.Rect.Min.X+16, dst.Rect.Min.Y+16, lines, overlayFg, overlayBg)
	}
}

func (e *Engine) Release() {
	e.doc = nil
	e.log.Debug("released")
}

func (e *Engine) Import(path string) error {
	img, err := readFile(path)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	e.open(documentFrom(path, img))
	return nil
}

func (e *Engine) importFS(fsys fs.FS, name string) error {
	img, err := readFS(fsys, name)
	if err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}
	doc := documentFrom(name, img)
	doc.Path = ""
	e.open(doc)
	return nil
}

func (e *Engine) open(doc *Document) {
	e.doc = doc
	e.pan = image.Point{}
	e.updateTitle()
	e.log.Info("document opened",
		zap.String("name", doc.Name),
		zap.Int("width", doc.Img.Rect.Dx()),
		zap.Int("height", doc.Img.Rect.Dy()))
}

func (e *Engine) Export(path string) int {
	if e.doc == nil {
		e.log.Error("export", zap.String("path", path), zap.Error(ErrNoDocument))
		return StatusNoDocument
	}
	enc, err := encoderFor(path)
	if err != nil {
		e.log.Error("export", zap.String("path", path), zap.Error(err))
		return StatusUnsupported
	}
	if err := writeFile(path, e.doc.Img, enc); err != nil {
		e.log.Error("export", zap.String("path", path), zap.Error(err))
		return StatusIOError
	}
	if path == e.doc.Path && e.doc.Dirty {
		e.doc.Dirty = false
		e.updateTitle()
	}
	e.log.Info("exported", zap.String("path", path))
	return StatusOK
}

func (e *Engine) save() {
	if e.doc.Path == "" {
		e.log.Warn("save: document has no path", zap.String("name", e.doc.Name))
		return
	}
	e.Export(e.doc.Path)
}

// RequestQuitConfirmation quits right away when nothing is unsaved, and
// otherwise asks on a separate goroutine. QuitRequested picks up the answer.
func (e *Engine) RequestQuitConfirmation() {
	if e.quit || e.asking {
		return
	}
	if e.doc == nil || !e.doc.Dirty || e.confirm == nil {
		e.quit = true
		return
	}
	e.asking = true
	confirm := e.confirm
	go func() {
		e.answers <- confirm(buildinfo.Product, "Quit without saving?")
	}()
}

func (e *Engine) QuitRequested() bool {
	if e.asking {
		select {
		case ok := <-e.answers:
			e.asking = false
			e.quit = ok
		default:
		}
	}
	return e.quit
}

func (e *Engine) updateTitle() {
	if e.setTitle == nil || e.doc == nil {
		return
	}
	mark := ""
	if e.doc.Dirty {
		mark = "*"
	}
	e.setTitle(fmt.Sprintf("%s - %s%s", buildinfo.Product, e.doc.Name, mark))
}

func (e *Engine) setZoom(z int) {
	e.zoom = max(minZoom, min(maxZoom, z))
}

// ratio converts window coordinates to canvas pixels.
func (e *Engine) ratio(in *input.Frame) float64 {
	if in.WindowSize[0] <= 0 || e.view.Dx() <= 0 {
		return 1
	}
	return float64(e.view.Dx()) / float64(in.WindowSize[0])
}

func (e *Engine) docRect() image.Rectangle {
	b := e.doc.Img.Rect
	w, h := b.Dx()*e.zoom, b.Dy()*e.zoom
	x := e.view.Min.X + (e.view.Dx()-w)/2 + e.pan.X
	y := e.view.Min.Y + (e.view.Dy()-h)/2 + e.pan.Y
	return image.Rect(x, y, x+w, y+h)
}

func (e *Engine) docPoint(x, y float64) (int, int, bool) {
	r := e.docRect()
	p := image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
	if !p.In(r) {
		return 0, 0, false
	}
	return (p.X - r.Min.X) / e.zoom, (p.Y - r.Min.Y) / e.zoom, true
}

func checker(dst *image.RGBA, r image.Rectangle) {
	clip := r.Intersect(dst.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			c := checkerLight
			if ((x-r.Min.X)/checkerCell+(y-r.Min.Y)/checkerCell)%2 == 1 {
				c = checkerDark
			}
			dst.SetRGBA(x, y, c)
		}
	}
}
