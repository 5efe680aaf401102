// Command mkicons renders the application icon set from one master image.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/image/draw"

	"goxel/assets"
)

func main() {
	var srcPath string
	var outDir string
	var sizes []int
	pflag.StringVar(&srcPath, "src", "", "Master image (png, square, at least 256px).")
	pflag.StringVar(&outDir, "out", "assets/icons", "Output directory.")
	pflag.IntSliceVar(&sizes, "sizes", assets.IconSizes, "Icon sizes to render.")
	pflag.Parse()

	if srcPath == "" {
		fmt.Fprintln(os.Stderr, "error: --src is required")
		os.Exit(2)
	}

	if err := run(srcPath, outDir, sizes); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(srcPath, outDir string, sizes []int) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open master %q: %w", srcPath, err)
	}
	src, err := png.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("decode master %q: %w", srcPath, err)
	}
	if b := src.Bounds(); b.Dx() != b.Dy() {
		return fmt.Errorf("master %q is %dx%d, want a square image", srcPath, b.Dx(), b.Dy())
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %q: %w", outDir, err)
	}
	for _, size := range sizes {
		path := filepath.Join(outDir, filepath.Base(assets.IconPath(size)))
		if err := writeIcon(path, resize(src, size)); err != nil {
			return err
		}
		fmt.Printf("%s: %dx%d\n", path, size, size)
	}
	return nil
}

func resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}

func writeIcon(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create icon %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode icon %q: %w", path, err)
	}
	return f.Close()
}
