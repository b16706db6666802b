package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightcity/internal/city"
	"github.com/Faultbox/nightcity/internal/config"
	"github.com/Faultbox/nightcity/internal/engine/mesh"
	"github.com/Faultbox/nightcity/internal/logger"
)

// World is the generated city and its packed mesh.
type World struct {
	Scene city.Scene
	Mesh  mesh.Mesh
	Seed  uint64
}

// CityOptions converts the city config section to generator options.
func CityOptions(c config.CityConfig) city.Options {
	opts := city.DefaultOptions()
	opts.Seed = c.Seed
	opts.HalfExtent = c.HalfExtent
	opts.Footprint = city.Range{Min: c.MinSize, Max: c.MaxSize}
	opts.Height = city.Range{Min: c.MinHeight, Max: c.MaxHeight}
	opts.BrightEvery = c.BrightEvery
	return opts
}

// BuildWorld generates the city and packs it into a single mesh.
func BuildWorld(c config.CityConfig) (*World, error) {
	opts := CityOptions(c)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("city options: %w", err)
	}

	gen := city.NewGenerator(opts)
	scene, err := gen.Generate(c.Buildings)
	if err != nil {
		return nil, fmt.Errorf("failed to generate city: %w", err)
	}

	w := &World{
		Scene: scene,
		Mesh:  mesh.Pack(scene),
		Seed:  gen.Seed(),
	}
	w.logStats()
	return w, nil
}

func (w *World) logStats() {
	bounds := w.Mesh.Bounds()
	size := bounds.Size()
	logger.Info("city generated",
		zap.Uint64("seed", w.Seed),
		zap.Int("buildings", len(w.Scene.Buildings())),
		zap.Int("vertices", len(w.Mesh.Vertices)),
		zap.Int("indices", len(w.Mesh.Indices)),
		zap.Int("triangles", w.Mesh.TriangleCount()),
		zap.Float32s("extent", []float32{size.X, size.Y, size.Z}),
	)
}
