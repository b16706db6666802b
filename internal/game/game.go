// Package game implements the city render loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/nightcity/internal/config"
	"github.com/Faultbox/nightcity/internal/engine/camera"
	"github.com/Faultbox/nightcity/internal/engine/capture"
	"github.com/Faultbox/nightcity/internal/engine/mesh"
	"github.com/Faultbox/nightcity/internal/engine/renderer"
	"github.com/Faultbox/nightcity/internal/engine/window"
	"github.com/Faultbox/nightcity/internal/logger"
	"github.com/Faultbox/nightcity/pkg/math"
)

const title = "Night City"

// Drawer draws one uploaded mesh per frame.
type Drawer interface {
	Upload(m mesh.Mesh)
	Draw(model, view, projection math.Mat4)
	Resize(width, height int)
	ReadPixels() ([]byte, int, int)
	Close()
}

// Game is the main instance.
type Game struct {
	config     *config.Config
	surface    window.Surface
	drawer     Drawer
	controller camera.Controller
	lens       camera.Lens
	camera     camera.State
	world      *World
	shots      *capture.Screenshot

	width  int
	height int

	now    func() time.Time
	frames int // total frames drawn
}

// New opens the window, creates the renderer and uploads the city.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("backend", cfg.Graphics.Backend),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Create window (this also creates OpenGL context)
	surface, err := window.New(window.Config{
		Backend:    cfg.Graphics.Backend,
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := surface.DrawableSize()
	r, err := renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: renderer.DefaultClearColor,
	})
	if err != nil {
		surface.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g, err := NewWithSurface(cfg, surface, r)
	if err != nil {
		r.Close()
		surface.Close()
		return nil, err
	}
	return g, nil
}

// NewWithSurface builds the city and uploads it to the given drawer.
func NewWithSurface(cfg *config.Config, surface window.Surface, drawer Drawer) (*Game, error) {
	world, err := BuildWorld(cfg.City)
	if err != nil {
		return nil, err
	}

	start := cfg.Camera.Start
	state := camera.DefaultState()
	state.Position = math.Vec3{X: start[0], Y: start[1], Z: start[2]}

	g := &Game{
		config:  cfg,
		surface: surface,
		drawer:  drawer,
		controller: camera.Controller{
			Step:             cfg.Camera.Step,
			ScaleByFrameTime: cfg.Camera.ScaleByFrameTime,
			ReferenceFPS:     cfg.Camera.ReferenceFPS,
		},
		lens: camera.Lens{
			FOVDegrees: cfg.Graphics.FOV,
			Near:       cfg.Graphics.Near,
			Far:        cfg.Graphics.Far,
		},
		camera: state,
		world:  world,
		shots:  capture.New(cfg.Capture.Dir, "nightcity", cfg.Capture.Format),
		now:    time.Now,
	}
	g.width, g.height = surface.DrawableSize()

	drawer.Upload(world.Mesh)

	logger.Info("game initialized successfully")
	return g, nil
}

// Camera returns the current camera state.
func (g *Game) Camera() camera.State {
	return g.camera
}

// World returns the generated city.
func (g *Game) World() *World {
	return g.world
}

// Frames returns the number of frames drawn so far.
func (g *Game) Frames() int {
	return g.frames
}

// Run drives the frame loop until quit or a close request.
// The close flag is only checked at the top of the loop, so the frame that
// raised it is still drawn and presented.
func (g *Game) Run() error {
	closing := false

	lastTime := g.now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting render loop")

	for !closing {
		now := g.now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		closing = g.frame(float32(dt))

		frameCount++
		if now.Sub(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = now
		}
	}

	logger.Info("render loop finished", zap.Int("frames", g.frames))
	return nil
}

// frame runs one iteration and reports whether the loop should stop afterwards.
func (g *Game) frame(dt float32) bool {
	// 1. Process input
	in := g.surface.Poll()
	if in.Resized && in.Width > 0 && in.Height > 0 {
		g.width, g.height = in.Width, in.Height
		g.drawer.Resize(in.Width, in.Height)
	}

	// 2. Update camera
	state, quit := g.controller.Update(g.camera, camera.Input{Held: in.Held, DeltaTime: dt})
	g.camera = state

	// 3. Render
	view := g.camera.View()
	projection := camera.Projection(g.width, g.height, g.lens)
	g.drawer.Draw(math.Identity(), view, projection)

	if in.Screenshot {
		g.screenshot()
	}

	// 4. Present
	g.surface.SwapBuffers()
	g.frames++

	return quit || in.CloseRequested
}

func (g *Game) screenshot() {
	pixels, w, h := g.drawer.ReadPixels()
	path, err := g.shots.FromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.drawer != nil {
		g.drawer.Close()
	}
	if g.surface != nil {
		g.surface.Close()
	}
}
