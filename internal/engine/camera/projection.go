package camera

import "github.com/Faultbox/nightcity/pkg/math"

// Lens holds the perspective projection parameters.
type Lens struct {
	FOVDegrees float32
	Near       float32
	Far        float32
}

// DefaultLens returns a 45 degree lens clipping at 0.1 and 1000.
func DefaultLens() Lens {
	return Lens{FOVDegrees: 45, Near: 0.1, Far: 1000}
}

// Projection returns the perspective matrix for a viewport of the given size.
// A degenerate height falls back to a square aspect.
func Projection(width, height int, lens Lens) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(lens.FOVDegrees), aspect, lens.Near, lens.Far)
}
