package game

import (
	"os"
	"testing"

	"github.com/Faultbox/nightcity/internal/config"
	"github.com/Faultbox/nightcity/internal/engine/camera"
	"github.com/Faultbox/nightcity/internal/engine/input"
	"github.com/Faultbox/nightcity/internal/engine/mesh"
	"github.com/Faultbox/nightcity/pkg/math"
)

// fakeSurface replays scripted frames, then requests close.
type fakeSurface struct {
	frames []input.Frame
	polled int
	swaps  int
	closed bool
}

func (s *fakeSurface) Poll() input.Frame {
	if s.polled >= len(s.frames) {
		s.polled++
		return input.Frame{CloseRequested: true}
	}
	f := s.frames[s.polled]
	s.polled++
	return f
}

func (s *fakeSurface) SwapBuffers()             { s.swaps++ }
func (s *fakeSurface) DrawableSize() (int, int) { return 800, 600 }
func (s *fakeSurface) Close()                   { s.closed = true }

type drawCall struct {
	model, view, projection math.Mat4
}

type fakeDrawer struct {
	uploads []mesh.Mesh
	draws   []drawCall
	resized [][2]int
	closed  bool
}

func (d *fakeDrawer) Upload(m mesh.Mesh) { d.uploads = append(d.uploads, m) }

func (d *fakeDrawer) Draw(model, view, projection math.Mat4) {
	d.draws = append(d.draws, drawCall{model, view, projection})
}

func (d *fakeDrawer) Resize(width, height int) { d.resized = append(d.resized, [2]int{width, height}) }

func (d *fakeDrawer) ReadPixels() ([]byte, int, int) {
	return []byte{10, 20, 30, 255}, 1, 1
}

func (d *fakeDrawer) Close() { d.closed = true }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.City.Seed = 42
	cfg.City.Buildings = 10
	cfg.Capture.Dir = t.TempDir()
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, frames ...input.Frame) (*Game, *fakeSurface, *fakeDrawer) {
	t.Helper()
	surface := &fakeSurface{frames: frames}
	drawer := &fakeDrawer{}
	g, err := NewWithSurface(cfg, surface, drawer)
	if err != nil {
		t.Fatalf("NewWithSurface: %v", err)
	}
	return g, surface, drawer
}

func TestQuitCompletesFrame(t *testing.T) {
	g, surface, drawer := newTestGame(t, testConfig(t),
		input.Frame{},
		input.Frame{Held: camera.Quit},
		input.Frame{Held: camera.Forward},
	)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if surface.polled != 2 {
		t.Errorf("polled %d frames, want 2", surface.polled)
	}
	if len(drawer.draws) != 2 || surface.swaps != 2 {
		t.Errorf("draws=%d swaps=%d, want 2 each", len(drawer.draws), surface.swaps)
	}
	if g.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", g.Frames())
	}
}

func TestCloseRequestCompletesFrame(t *testing.T) {
	g, surface, drawer := newTestGame(t, testConfig(t),
		input.Frame{Held: camera.Forward, CloseRequested: true},
	)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(drawer.draws) != 1 || surface.swaps != 1 {
		t.Errorf("draws=%d swaps=%d, want 1 each", len(drawer.draws), surface.swaps)
	}
	if got := g.Camera().Position.Z; got != 149 {
		t.Errorf("camera z = %v, want 149", got)
	}
}

func TestCameraMovesOneStepPerFrame(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(t),
		input.Frame{Held: camera.Forward},
		input.Frame{Held: camera.Forward | camera.Ascend},
		input.Frame{Held: camera.StrafeRight},
		input.Frame{Held: camera.Quit},
	)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := math.Vec3{X: 1, Y: 51, Z: 148}
	if got := g.Camera().Position; !got.ApproxEqual(want, 1e-5) {
		t.Errorf("camera position = %+v, want %+v", got, want)
	}
	if got := g.Camera().Front; got != (math.Vec3{Z: -1}) {
		t.Errorf("front changed to %+v", got)
	}
}

func TestDrawUsesCameraMatrices(t *testing.T) {
	g, _, drawer := newTestGame(t, testConfig(t), input.Frame{Held: camera.Quit})

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(drawer.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(drawer.draws))
	}

	call := drawer.draws[0]
	if call.model != math.Identity() {
		t.Error("model matrix is not identity")
	}
	if call.view != camera.DefaultState().View() {
		t.Error("view matrix does not match default camera")
	}
	if want := camera.Projection(800, 600, camera.DefaultLens()); call.projection != want {
		t.Error("projection does not match 800x600 default lens")
	}
}

func TestMeshUploadedOnce(t *testing.T) {
	g, _, drawer := newTestGame(t, testConfig(t),
		input.Frame{Held: camera.Forward},
		input.Frame{Held: camera.Backward},
		input.Frame{},
	)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(drawer.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(drawer.uploads))
	}

	m := drawer.uploads[0]
	if len(m.Vertices) != 11*mesh.VerticesPerBox || len(m.Indices) != 11*mesh.IndicesPerBox {
		t.Errorf("mesh has %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
	if len(drawer.draws) != 4 {
		t.Errorf("draws = %d, want 4", len(drawer.draws))
	}
}

func TestZeroBuildingsDrawsGround(t *testing.T) {
	cfg := testConfig(t)
	cfg.City.Buildings = 0
	_, _, drawer := newTestGame(t, cfg)

	m := drawer.uploads[0]
	if len(m.Vertices) != 8 || len(m.Indices) != 36 {
		t.Errorf("ground-only mesh has %d vertices, %d indices, want 8/36", len(m.Vertices), len(m.Indices))
	}
}

func TestResize(t *testing.T) {
	g, _, drawer := newTestGame(t, testConfig(t),
		input.Frame{Resized: true, Width: 1024, Height: 512},
		input.Frame{Resized: true, Width: 0, Height: 0},
		input.Frame{Held: camera.Quit},
	)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(drawer.resized) != 1 || drawer.resized[0] != [2]int{1024, 512} {
		t.Errorf("resized = %v, want [[1024 512]]", drawer.resized)
	}

	want := camera.Projection(1024, 512, camera.DefaultLens())
	if got := drawer.draws[len(drawer.draws)-1].projection; got != want {
		t.Error("projection does not track the resized aspect")
	}
}

func TestScreenshot(t *testing.T) {
	cfg := testConfig(t)
	g, _, _ := newTestGame(t, cfg,
		input.Frame{Screenshot: true},
		input.Frame{Held: camera.Quit},
	)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, err := os.ReadDir(cfg.Capture.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, want 1", len(entries))
	}
}

func TestClose(t *testing.T) {
	g, surface, drawer := newTestGame(t, testConfig(t))
	g.Close()
	if !surface.closed || !drawer.closed {
		t.Errorf("surface closed=%v drawer closed=%v", surface.closed, drawer.closed)
	}
}

func TestBuildWorld(t *testing.T) {
	cfg := testConfig(t)

	a, err := BuildWorld(cfg.City)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	b, err := BuildWorld(cfg.City)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}

	if a.Seed != 42 {
		t.Errorf("seed = %d, want 42", a.Seed)
	}
	if len(a.Scene) != 11 {
		t.Errorf("scene has %d entries, want 11", len(a.Scene))
	}
	for i := range a.Scene {
		if a.Scene[i] != b.Scene[i] {
			t.Fatalf("scene differs at %d for the same seed", i)
		}
	}
}

func TestBuildWorldRejectsBadOptions(t *testing.T) {
	cfg := testConfig(t)
	cfg.City.MinSize = 20
	cfg.City.MaxSize = 10
	if _, err := BuildWorld(cfg.City); err == nil {
		t.Error("expected error for inverted size range")
	}

	cfg = testConfig(t)
	cfg.City.Buildings = -1
	if _, err := BuildWorld(cfg.City); err == nil {
		t.Error("expected error for negative count")
	}
}
