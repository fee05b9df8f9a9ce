package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
)

// IconSpec is one fully resolved icon generation task.
type IconSpec struct {
	Source         string // embedded glyph name or image path
	Background     color.RGBA
	BackgroundName string
	Size           int
	Path           string
}

// result is the outcome of one IconSpec.
type result struct {
	Spec  IconSpec
	Bytes int
	Err   error
}

// specsFromConfig resolves colors and output paths for every configured icon.
func specsFromConfig(cfg Config) ([]IconSpec, error) {
	specs := make([]IconSpec, 0, len(cfg.Icons))
	for i, ic := range cfg.Icons {
		if err := validateIcon(ic); err != nil {
			return nil, fmt.Errorf("icons[%d]: %w", i, err)
		}

		bgName := ic.Background
		var bg color.RGBA
		if bgName == "" {
			bg, _ = themeColor(ic.Source)
			bgName = ic.Source
		} else {
			bg, _ = parseColor(bgName)
		}

		path := ic.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.OutputDir, path)
		}

		specs = append(specs, IconSpec{
			Source:         ic.Source,
			Background:     bg,
			BackgroundName: bgName,
			Size:           ic.Size,
			Path:           path,
		})
	}
	return specs, nil
}

// generateIcons processes specs in order. A failing spec is logged and
// recorded; it never stops the remaining ones.
func generateIcons(specs []IconSpec, createDirs bool) []result {
	results := make([]result, 0, len(specs))
	for _, spec := range specs {
		n, err := generateIcon(spec, createDirs)
		r := result{Spec: spec, Bytes: n, Err: err}
		if err != nil {
			log.Printf("Error creating %s", formatResult(r))
		} else {
			log.Printf("Created %s", formatResult(r))
		}
		results = append(results, r)
	}
	return results
}

func generateIcon(spec IconSpec, createDirs bool) (int, error) {
	if createDirs {
		dir := filepath.Dir(spec.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("%w: create dir %s: %w", ErrWrite, dir, err)
		}
	}
	src, err := loadSource(spec.Source)
	if err != nil {
		return 0, err
	}
	return composite(src, spec.Background, spec.Size, spec.Path)
}

// countFailed returns how many results carry an error.
func countFailed(results []result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
