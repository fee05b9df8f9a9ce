package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// marginRatio is the share of the canvas side the glyph occupies on its
// constraining axis.
const marginRatio = 0.8

var (
	ErrDecode      = errors.New("cannot decode source image")
	ErrWrite       = errors.New("cannot write icon")
	ErrInvalidSize = errors.New("icon size must be positive")
)

// placement is where a w×h source lands on a size×size canvas.
type placement struct {
	Scale float64
	X, Y  float64
	W, H  float64
}

// computePlacement scales the source uniformly to fit marginRatio of the
// canvas and centers it.
func computePlacement(w, h, size int) placement {
	s := float64(size)
	scale := math.Min(s/float64(w), s/float64(h)) * marginRatio
	sw, sh := float64(w)*scale, float64(h)*scale
	return placement{
		Scale: scale,
		X:     (s - sw) / 2,
		Y:     (s - sh) / 2,
		W:     sw,
		H:     sh,
	}
}

// rect snaps the placement to the pixel grid.
func (p placement) rect() image.Rectangle {
	return image.Rect(
		int(math.Round(p.X)),
		int(math.Round(p.Y)),
		int(math.Round(p.X+p.W)),
		int(math.Round(p.Y+p.H)),
	)
}

// decodeSource decodes any registered bitmap format.
func decodeSource(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrDecode, b.Dx(), b.Dy())
	}
	return img, nil
}

// renderIcon draws src centered on a size×size canvas filled with bg.
func renderIcon(src image.Image, bg color.Color, size int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(bg)
	dc.Clear()

	b := src.Bounds()
	p := computePlacement(b.Dx(), b.Dy(), size)
	draw.CatmullRom.Scale(canvas, p.rect(), src, b, draw.Over, nil)
	return canvas
}

// composite decodes src, renders it onto a bg canvas of the given size and
// writes the encoded icon to outputPath. It returns the number of bytes
// written. On error outputPath is left untouched.
func composite(src []byte, bg color.Color, size int, outputPath string) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	img, err := decodeSource(src)
	if err != nil {
		return 0, err
	}
	canvas := renderIcon(img, bg, size)

	data, err := encodeForPath(canvas, outputPath)
	if err != nil {
		return 0, fmt.Errorf("%w: encode %s: %w", ErrWrite, outputPath, err)
	}
	if err := writeFileAtomic(outputPath, data, 0644); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return len(data), nil
}

// parseColor accepts an SVG color name or #rgb, #rrggbb, #rrggbbaa.
func parseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[s]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
