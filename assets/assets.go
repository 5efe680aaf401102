// Package assets holds the data files compiled into the binary.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"
)

//go:embed icons/*.png
var files embed.FS

// IconSizes lists the embedded window icon resolutions.
var IconSizes = []int{16, 24, 32, 48, 64, 128, 256}

// FS exposes the embedded files.
func FS() fs.FS { return files }

// IconPath returns the asset path of the icon of the given size.
func IconPath(size int) string {
	return fmt.Sprintf("icons/icon%d.png", size)
}

// LoadIcons decodes every icon in sizes from fsys. Each icon must be square,
// of the advertised size.
func LoadIcons(fsys fs.FS, sizes []int) ([]image.Image, error) {
	icons := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		path := IconPath(size)
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("icon %s: %w", path, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode icon %s: %w", path, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			return nil, fmt.Errorf("icon %s is %dx%d, want %dx%d", path, b.Dx(), b.Dy(), size, size)
		}
		icons = append(icons, img)
	}
	return icons, nil
}

// MustIcons returns the embedded icon set. Icons are part of the build, so a
// missing or corrupt one panics.
func MustIcons() []image.Image {
	icons, err := LoadIcons(files, IconSizes)
	if err != nil {
		panic(err)
	}
	return icons
}
