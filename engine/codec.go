package engine

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Export statuses, returned verbatim as the process exit status in batch
// mode.
const (
	StatusOK          = 0
	StatusNoDocument  = 1
	StatusUnsupported = 2
	StatusIOError     = 3
)

var (
	ErrNoDocument        = errors.New("no document")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

type encodeFunc func(w io.Writer, img image.Image) error

var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".gif":  func(w io.Writer, img image.Image) error { return gif.Encode(w, img, nil) },
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
	return enc, nil
}

// decode reads any registered format: png, jpeg and gif from the standard
// library, bmp and tiff from x/image.
func decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, err
	}
	return img, nil
}

func readFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

func readFS(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

func writeFile(path string, img image.Image, enc encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
