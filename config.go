package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds the generator configuration.
type Config struct {
	OutputDir  string       `json:"output_dir"`
	CreateDirs bool         `json:"create_dirs"`
	Icons      []IconConfig `json:"icons"`
}

// IconConfig describes one icon to generate.
type IconConfig struct {
	Source     string `json:"source"`               // "black", "white" or an image path
	Background string `json:"background,omitempty"` // defaults to the source theme
	Size       int    `json:"size"`
	Path       string `json:"path"` // relative to OutputDir unless absolute
}

var configPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configPath = filepath.Join(home, ".config", "dice-icons", "config.json")
}

// defaultConfig returns the notification icons for the iPhone and iPad
// targets.
func defaultConfig() Config {
	return Config{
		OutputDir: "temp_icons",
		Icons: []IconConfig{
			{Source: "white", Background: "white", Size: 20, Path: "icon_20x20_iphone_notifications.png"},
			{Source: "black", Background: "black", Size: 40, Path: "icon_40x40_ipad_notifications.png"},
		},
	}
}

// loadConfig loads config from disk. A missing file yields the defaults and
// is not created. Missing fields keep their defaults; invalid icons are
// dropped.
func loadConfig() Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read config %s: %v", configPath, err)
		}
		return cfg
	}

	// Icons are decoded into a fresh slice; json would otherwise merge
	// entries into the default elements.
	cfg.Icons = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse config %s: %v", configPath, err)
		return defaultConfig()
	}

	defaults := defaultConfig()
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.Icons == nil {
		cfg.Icons = defaults.Icons
		return cfg
	}

	valid := cfg.Icons[:0]
	for i, ic := range cfg.Icons {
		if err := validateIcon(ic); err != nil {
			log.Printf("Ignoring icons[%d] in config: %v", i, err)
			continue
		}
		valid = append(valid, ic)
	}
	cfg.Icons = valid
	if len(cfg.Icons) == 0 {
		log.Printf("No valid icons in config %s, using defaults", configPath)
		cfg.Icons = defaults.Icons
	}

	return cfg
}

// validateIcon checks an icon entry without touching the filesystem.
func validateIcon(ic IconConfig) error {
	if ic.Source == "" {
		return fmt.Errorf("missing source")
	}
	if ic.Size <= 0 {
		return fmt.Errorf("invalid size %d", ic.Size)
	}
	if ic.Path == "" {
		return fmt.Errorf("missing path")
	}
	if ic.Background == "" {
		if !isBuiltinSource(ic.Source) {
			return fmt.Errorf("background required for source %q", ic.Source)
		}
		return nil
	}
	if _, err := parseColor(ic.Background); err != nil {
		return err
	}
	return nil
}

// saveConfig writes config to disk with restrictive permissions (0600).
func saveConfig(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFileSecure(configPath, data)
}

// writeFileSecure writes data to path with 0600 permissions, creating parent dirs.
func writeFileSecure(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
