package assets

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestMustIcons(t *testing.T) {
	icons := MustIcons()
	if len(icons) != len(IconSizes) {
		t.Fatalf("len(MustIcons()) = %d, want %d", len(icons), len(IconSizes))
	}
	for i, img := range icons {
		if got := img.Bounds().Dx(); got != IconSizes[i] {
			t.Fatalf("icon %d width = %d, want %d", i, got, IconSizes[i])
		}
	}
}

func TestLoadIconsMissing(t *testing.T) {
	_, err := LoadIcons(fstest.MapFS{}, []int{16})
	if err == nil || !strings.Contains(err.Error(), "icons/icon16.png") {
		t.Fatalf("LoadIcons() error = %v, want missing icon16", err)
	}
}

func TestLoadIconsCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"icons/icon16.png": &fstest.MapFile{Data: []byte("not a png")}}
	if _, err := LoadIcons(fsys, []int{16}); err == nil {
		t.Fatal("LoadIcons() error = nil for corrupt data")
	}
}

func TestLoadIconsWrongSize(t *testing.T) {
	data, err := fs.ReadFile(FS(), IconPath(24))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	fsys := fstest.MapFS{"icons/icon16.png": &fstest.MapFile{Data: data}}
	if _, err := LoadIcons(fsys, []int{16}); err == nil {
		t.Fatal("LoadIcons() error = nil for a 24px image in the 16px slot")
	}
}
