// Package config holds cmd/delilah-viewer's run-time settings, populated
// from command-line flags.
//
// No config/env library appears anywhere in the retrieved pack —
// tomicz-llm-game-engine/internal/engineconfig is itself a hand-rolled
// struct loaded with stdlib encoding/json over os.ReadFile — so this
// package follows the same shape, swapping the file source for stdlib
// flag since delilah-viewer has no persisted preferences to read back.
package config

import "flag"

// Config is delilah-viewer's run-time configuration.
type Config struct {
	ScenePath string
	Width     int
	Height    int

	// Headless runs without opening a window, grounded on
	// main_host.go's -headless/-hz/-ticks flags.
	Headless bool
	Hz       int
	Ticks    uint64
}

// Default returns the viewer's default configuration: a windowed
// 640x480 session with the built-in placeholder scene.
func Default() Config {
	return Config{Width: 640, Height: 480, Hz: 60}
}

// Load parses args (typically os.Args[1:]) into a Config, starting from
// Default.
func Load(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("delilah-viewer", flag.ContinueOnError)
	fs.StringVar(&cfg.ScenePath, "scene", cfg.ScenePath, "Path to a scene JSON file (default: built-in placeholder scene).")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	fs.BoolVar(&cfg.Headless, "headless", false, "Run without opening a window.")
	fs.IntVar(&cfg.Hz, "hz", cfg.Hz, "Tick rate in headless mode.")
	fs.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
