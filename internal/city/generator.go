package city

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Faultbox/nightcity/pkg/math"
)

// ErrInvalidCount is returned when a negative building count is requested.
var ErrInvalidCount = errors.New("building count must be non-negative")

// Palette scaling. Bright buildings land in the upper half of the unit range,
// muted ones stay dark in red/green with a blue bias.
const (
	brightScale    = 0.5
	brightBias     = 0.5
	mutedRGScale   = 0.3
	mutedBlueScale = 0.5
	mutedBlueBias  = 0.3
)

// Range is a closed sampling interval.
type Range struct {
	Min float32
	Max float32
}

// Options controls building sampling.
type Options struct {
	// Seed for the random source. Zero selects a time-based seed.
	Seed uint64

	// HalfExtent bounds building centers to [-HalfExtent, HalfExtent] on X and Z.
	HalfExtent float32

	Footprint Range // width and depth
	Height    Range
	Tone      Range // base color sample before palette scaling

	// Every BrightEvery-th building (index 0 included) gets a bright color.
	BrightEvery int
}

// DefaultOptions returns the standard city layout.
func DefaultOptions() Options {
	return Options{
		HalfExtent:  100,
		Footprint:   Range{Min: 5, Max: 15},
		Height:      Range{Min: 10, Max: 60},
		Tone:        Range{Min: 0.2, Max: 0.8},
		BrightEvery: 5,
	}
}

// Validate checks that all ranges are usable.
func (o Options) Validate() error {
	if o.HalfExtent <= 0 {
		return fmt.Errorf("half extent must be positive, got %v", o.HalfExtent)
	}
	if o.Footprint.Min <= 0 || o.Footprint.Max < o.Footprint.Min {
		return fmt.Errorf("invalid footprint range [%v, %v]", o.Footprint.Min, o.Footprint.Max)
	}
	if o.Height.Min <= 0 || o.Height.Max < o.Height.Min {
		return fmt.Errorf("invalid height range [%v, %v]", o.Height.Min, o.Height.Max)
	}
	if o.Tone.Min < 0 || o.Tone.Max > 1 || o.Tone.Max < o.Tone.Min {
		return fmt.Errorf("invalid tone range [%v, %v]", o.Tone.Min, o.Tone.Max)
	}
	if o.BrightEvery <= 0 {
		return fmt.Errorf("bright interval must be positive, got %d", o.BrightEvery)
	}
	return nil
}

// Generator samples random buildings.
type Generator struct {
	opts Options
	seed uint64
	rng  *rand.Rand
}

// NewGenerator creates a generator. A zero seed is replaced with the current time.
func NewGenerator(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		opts: opts,
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Seed returns the effective seed, useful for logging a run.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate returns count random buildings followed by the ground plane.
func (g *Generator) Generate(count int) (Scene, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate %d buildings: %w", count, ErrInvalidCount)
	}

	scene := make(Scene, 0, count+1)
	for i := 0; i < count; i++ {
		scene = append(scene, g.building(i))
	}
	return append(scene, Ground()), nil
}

func (g *Generator) building(i int) Building {
	o := g.opts
	b := Building{
		Position: math.Vec3{
			X: g.uniform(-o.HalfExtent, o.HalfExtent),
			Y: 0,
			Z: g.uniform(-o.HalfExtent, o.HalfExtent),
		},
		Width:  g.uniform(o.Footprint.Min, o.Footprint.Max),
		Depth:  g.uniform(o.Footprint.Min, o.Footprint.Max),
		Height: g.uniform(o.Height.Min, o.Height.Max),
	}

	if IsBright(i, o.BrightEvery) {
		b.Color = Color{
			R: g.tone()*brightScale + brightBias,
			G: g.tone()*brightScale + brightBias,
			B: g.tone()*brightScale + brightBias,
		}
	} else {
		b.Color = Color{
			R: g.tone() * mutedRGScale,
			G: g.tone() * mutedRGScale,
			B: g.tone()*mutedBlueScale + mutedBlueBias,
		}
	}
	return b
}

func (g *Generator) tone() float32 {
	return g.uniform(g.opts.Tone.Min, g.opts.Tone.Max)
}

func (g *Generator) uniform(lo, hi float32) float32 {
	return lo + (hi-lo)*g.rng.Float32()
}

// IsBright reports whether the building at index i uses the bright palette.
func IsBright(i, every int) bool {
	return every > 0 && i%every == 0
}

// Generate creates count buildings plus ground with default options and a time-based seed.
func Generate(count int) (Scene, error) {
	return NewGenerator(DefaultOptions()).Generate(count)
}
