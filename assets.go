package main

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
)

// Dice glyphs shipped with the binary. The black glyph is drawn in white for
// dark backgrounds, the white glyph in black for light ones.
var (
	//go:embed assets/black_dice.png
	blackDicePNG []byte

	//go:embed assets/white_dice.png
	whiteDicePNG []byte
)

// builtinSource is an embedded glyph together with the background it is
// themed for.
type builtinSource struct {
	data  []byte
	theme color.RGBA
}

var builtinSources = map[string]builtinSource{
	"black": {data: blackDicePNG, theme: color.RGBA{0, 0, 0, 255}},
	"white": {data: whiteDicePNG, theme: color.RGBA{255, 255, 255, 255}},
}

// isBuiltinSource reports whether name selects an embedded glyph.
func isBuiltinSource(name string) bool {
	_, ok := builtinSources[name]
	return ok
}

// themeColor returns the background a named source is drawn on by default.
func themeColor(name string) (color.RGBA, bool) {
	src, ok := builtinSources[name]
	return src.theme, ok
}

// loadSource returns the encoded bytes for a source selector: an embedded
// glyph name or a path to an image file on disk.
func loadSource(source string) ([]byte, error) {
	if src, ok := builtinSources[source]; ok {
		return src.data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: read source %s: %w", ErrDecode, source, err)
	}
	return data, nil
}
