package main

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSpecsFromConfig_Defaults(t *testing.T) {
	specs, err := specsFromConfig(defaultConfig())
	if err != nil {
		t.Fatalf("specsFromConfig() error: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("len(specs) = %d, want 2", len(specs))
	}

	first := specs[0]
	if first.Source != "white" || first.Size != 20 || first.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("specs[0] = %+v", first)
	}
	if want := filepath.Join("temp_icons", "icon_20x20_iphone_notifications.png"); first.Path != want {
		t.Errorf("specs[0].Path = %q, want %q", first.Path, want)
	}

	second := specs[1]
	if second.Source != "black" || second.Size != 40 || second.Background != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("specs[1] = %+v", second)
	}
}

func TestSpecsFromConfig_ThemeAndAbsolutePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "abs.png")
	cfg := Config{
		OutputDir: "out",
		Icons: []IconConfig{
			{Source: "black", Size: 16, Path: abs},
			{Source: "white", Background: "#ff0000", Size: 16, Path: "rel.png"},
		},
	}
	specs, err := specsFromConfig(cfg)
	if err != nil {
		t.Fatalf("specsFromConfig() error: %v", err)
	}
	if specs[0].Path != abs {
		t.Errorf("absolute path rewritten to %q", specs[0].Path)
	}
	if specs[0].Background != (color.RGBA{0, 0, 0, 255}) || specs[0].BackgroundName != "black" {
		t.Errorf("theme background = %v (%s), want black", specs[0].Background, specs[0].BackgroundName)
	}
	if specs[1].Background != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("explicit background = %v, want red", specs[1].Background)
	}
	if specs[1].Path != filepath.Join("out", "rel.png") {
		t.Errorf("relative path = %q, want %q", specs[1].Path, filepath.Join("out", "rel.png"))
	}
}

func TestSpecsFromConfig_Invalid(t *testing.T) {
	cfg := Config{Icons: []IconConfig{{Source: "white", Size: 20, Path: "a.png", Background: "nope"}}}
	if _, err := specsFromConfig(cfg); err == nil {
		t.Error("specsFromConfig() = nil error, want error")
	}
}

func TestGenerateIcons_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	black := color.RGBA{0, 0, 0, 255}
	specs := []IconSpec{
		{Source: filepath.Join(dir, "missing.png"), Background: black, BackgroundName: "black", Size: 20, Path: filepath.Join(dir, "a.png")},
		{Source: "black", Background: black, BackgroundName: "black", Size: 20, Path: filepath.Join(dir, "nodir", "b.png")},
		{Source: "black", Background: black, BackgroundName: "black", Size: 40, Path: filepath.Join(dir, "c.png")},
	}

	results := generateIcons(specs, false)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if !errors.Is(results[0].Err, ErrDecode) {
		t.Errorf("results[0].Err = %v, want ErrDecode", results[0].Err)
	}
	if !errors.Is(results[1].Err, ErrWrite) {
		t.Errorf("results[1].Err = %v, want ErrWrite", results[1].Err)
	}
	if results[2].Err != nil {
		t.Errorf("results[2].Err = %v, want nil", results[2].Err)
	}
	if results[2].Bytes <= 0 {
		t.Errorf("results[2].Bytes = %d, want > 0", results[2].Bytes)
	}
	if got := countFailed(results); got != 2 {
		t.Errorf("countFailed() = %d, want 2", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.png")); !os.IsNotExist(err) {
		t.Error("a.png written despite missing source")
	}
}

func TestGenerateIcons_CreateDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "icon.png")
	specs := []IconSpec{{Source: "white", Background: color.RGBA{255, 255, 255, 255}, BackgroundName: "white", Size: 20, Path: path}}

	results := generateIcons(specs, true)
	if results[0].Err != nil {
		t.Fatalf("generateIcons() error: %v", results[0].Err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("icon not written: %v", err)
	}
}

func TestGenerateIcons_Empty(t *testing.T) {
	if results := generateIcons(nil, false); len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}
