package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
	Builder        = "unknown"
	GithubRepo     = "babs/dice-icons"
)

func versionString() string {
	return fmt.Sprintf("dice-icons %s-%s", Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("dice-icons %s-%s (built %s using %s)\nhttps://github.com/%s\n",
		Version, CommitHash, BuildTimestamp, Builder, GithubRepo)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[dice-icons] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	doUpdate := flag.Bool("update", false, "check and update to latest release")
	cfgFile := flag.String("config", "", "config file path (env: DICE_ICONS_CONFIG)")
	outDir := flag.String("out-dir", "", "directory for relative icon paths (env: DICE_ICONS_OUT_DIR)")
	mkdir := flag.Bool("mkdir", false, "create missing output directories (env: DICE_ICONS_MKDIR)")
	strict := flag.Bool("strict", false, "exit with status 1 if any icon fails")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the config path and exit")
	flag.Usage = func() {
		fmt.Print(versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	if *doUpdate {
		selfUpdate()
		return
	}

	// Resolve config path: default < env < flag.
	if v := os.Getenv("DICE_ICONS_CONFIG"); v != "" {
		configPath = v
	}
	if *cfgFile != "" {
		configPath = *cfgFile
	}

	cfg := loadConfig()

	// -mkdir defaults to false, so only an explicit flag may override env.
	var mkdirOverride *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mkdir" {
			mkdirOverride = mkdir
		}
	})
	applyOverrides(&cfg, overrides{
		OutputDir:  *outDir,
		CreateDirs: mkdirOverride,
	})

	if *writeConfig {
		if err := saveConfig(cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Config written to %s\n", configPath)
		return
	}

	log.Println(versionString())
	os.Exit(run(cfg, *strict))
}

// run generates every configured icon and returns the process exit status.
// Per-icon failures only affect the status in strict mode.
func run(cfg Config, strict bool) int {
	specs, err := specsFromConfig(cfg)
	if err != nil {
		log.Printf("Invalid config: %v", err)
		return 1
	}

	results := generateIcons(specs, cfg.CreateDirs)
	log.Println(formatSummary(results))

	if strict && countFailed(results) > 0 {
		return 1
	}
	return 0
}

// overrides holds CLI flag values for config overrides.
type overrides struct {
	OutputDir  string
	CreateDirs *bool
}

// applyStringOverride applies a string override from env var and flag.
// Non-empty values are accepted only if valid returns true.
func applyStringOverride(target *string, envKey, flagName, flagVal string, valid func(string) bool) {
	if v := os.Getenv(envKey); v != "" {
		if !valid(v) {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = v
		}
	}
	if flagVal != "" {
		if !valid(flagVal) {
			log.Printf("Ignoring invalid -%s=%q", flagName, flagVal)
		} else {
			*target = flagVal
		}
	}
}

// applyBoolOverride applies a tri-state bool from env var (true/1, false/0)
// and an optional flag.
func applyBoolOverride(target *bool, envKey string, flagVal *bool) {
	if v := os.Getenv(envKey); v != "" {
		switch v {
		case "true", "1":
			*target = true
		case "false", "0":
			*target = false
		default:
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		}
	}
	if flagVal != nil {
		*target = *flagVal
	}
}

// applyOverrides applies env vars and flags to config. Priority: flag > env > config file.
func applyOverrides(cfg *Config, o overrides) {
	applyStringOverride(&cfg.OutputDir, "DICE_ICONS_OUT_DIR", "out-dir", o.OutputDir,
		func(s string) bool { return s != "" })
	applyBoolOverride(&cfg.CreateDirs, "DICE_ICONS_MKDIR", o.CreateDirs)
}
