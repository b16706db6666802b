package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagBackend     = flag.String("backend", "", "Window backend: sdl or glfw")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagBuildings   = flag.Int("buildings", -1, "Number of buildings to generate")
	flagSeed        = flag.Uint64("seed", 0, "City seed (0 = random)")
	flagFrameScaled = flag.Bool("frame-scaled", false, "Scale camera movement by frame time")
	flagDryRun      = flag.Bool("dry-run", false, "Generate and pack the city, log stats, then exit")
	flagWriteConfig = flag.Bool("write-config", false, "Save the effective config to the config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DryRun reports whether the window should be skipped.
func DryRun() bool {
	return *flagDryRun
}

// WriteConfig reports whether the effective config should be saved.
func WriteConfig() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Graphics.Backend = *flagBackend
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagBuildings >= 0 {
		cfg.City.Buildings = *flagBuildings
	}
	if *flagSeed != 0 {
		cfg.City.Seed = *flagSeed
	}
	if *flagFrameScaled {
		cfg.Camera.ScaleByFrameTime = true
	}
}
