// Package config handles configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	City     CityConfig     `yaml:"city"`
	Camera   CameraConfig   `yaml:"camera"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Backend    string  `yaml:"backend"` // "sdl" or "glfw"
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// CityConfig holds procedural generation settings.
type CityConfig struct {
	Buildings   int     `yaml:"buildings"`
	Seed        uint64  `yaml:"seed"` // 0 = new city every run
	HalfExtent  float32 `yaml:"half_extent"`
	MinSize     float32 `yaml:"min_size"`
	MaxSize     float32 `yaml:"max_size"`
	MinHeight   float32 `yaml:"min_height"`
	MaxHeight   float32 `yaml:"max_height"`
	BrightEvery int     `yaml:"bright_every"`
}

// CameraConfig holds free-fly camera settings.
type CameraConfig struct {
	Start            [3]float32 `yaml:"start"`
	Step             float32    `yaml:"step"`
	ScaleByFrameTime bool       `yaml:"scale_by_frame_time"`
	ReferenceFPS     float32    `yaml:"reference_fps"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Backend:    "sdl",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
			Near:       0.1,
			Far:        1000,
		},
		City: CityConfig{
			Buildings:   100,
			Seed:        0,
			HalfExtent:  100,
			MinSize:     5,
			MaxSize:     15,
			MinHeight:   10,
			MaxHeight:   60,
			BrightEvery: 5,
		},
		Camera: CameraConfig{
			Start:            [3]float32{0, 50, 150},
			Step:             1,
			ScaleByFrameTime: false,
			ReferenceFPS:     60,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	g := c.Graphics
	if g.Backend != "sdl" && g.Backend != "glfw" {
		err = multierr.Append(err, fmt.Errorf("graphics.backend: unknown backend %q", g.Backend))
	}
	if g.Width <= 0 || g.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: window size %dx%d must be positive", g.Width, g.Height))
	}
	if g.FOV <= 0 || g.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("graphics.fov: %v out of (0, 180)", g.FOV))
	}
	if g.Near <= 0 || g.Far <= g.Near {
		err = multierr.Append(err, fmt.Errorf("graphics: clip planes near=%v far=%v", g.Near, g.Far))
	}

	city := c.City
	if city.Buildings < 0 {
		err = multierr.Append(err, fmt.Errorf("city.buildings: %d is negative", city.Buildings))
	}
	if city.HalfExtent <= 0 {
		err = multierr.Append(err, fmt.Errorf("city.half_extent: %v must be positive", city.HalfExtent))
	}
	if city.MinSize <= 0 || city.MaxSize < city.MinSize {
		err = multierr.Append(err, fmt.Errorf("city: size range [%v, %v]", city.MinSize, city.MaxSize))
	}
	if city.MinHeight <= 0 || city.MaxHeight < city.MinHeight {
		err = multierr.Append(err, fmt.Errorf("city: height range [%v, %v]", city.MinHeight, city.MaxHeight))
	}
	if city.BrightEvery <= 0 {
		err = multierr.Append(err, fmt.Errorf("city.bright_every: %d must be positive", city.BrightEvery))
	}

	if c.Camera.Step <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.step: %v must be positive", c.Camera.Step))
	}
	if c.Camera.ScaleByFrameTime && c.Camera.ReferenceFPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.reference_fps: %v must be positive", c.Camera.ReferenceFPS))
	}

	if c.Capture.Format != "png" && c.Capture.Format != "bmp" {
		err = multierr.Append(err, fmt.Errorf("capture.format: unknown format %q", c.Capture.Format))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return err
}
