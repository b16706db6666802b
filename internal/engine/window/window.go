// Package window creates the OS window and OpenGL context the city is drawn into.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/nightcity/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Surface is a window with a current OpenGL 4.1 core context.
type Surface interface {
	// Poll processes pending window events and samples the keyboard.
	Poll() input.Frame
	// SwapBuffers presents the back buffer; blocks on vsync when enabled.
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	Close()
}

// New opens a window using the configured backend.
func New(cfg Config) (Surface, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
