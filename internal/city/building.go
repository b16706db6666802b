// Package city generates the box buildings that make up the night city scene.
package city

import "github.com/Faultbox/nightcity/pkg/math"

// Color is a linear RGB triple. Channels are nominally in [0,1] but are not clamped.
type Color struct {
	R, G, B float32
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Building is an axis-aligned box resting on Position.Y.
// Position.X and Position.Z locate the center of the footprint.
type Building struct {
	Position math.Vec3
	Width    float32 // X extent
	Depth    float32 // Z extent
	Height   float32 // Y extent
	Color    Color
}

// Scene is an ordered list of buildings. The last element is always the ground plane.
type Scene []Building

// Ground plane parameters.
const (
	GroundSize   = 250.0
	GroundHeight = 1.0
)

// GroundColor is the dark gray of the ground plane.
var GroundColor = Color{0.1, 0.1, 0.1}

// Ground returns the fixed ground plane. Its top face sits flush with y = 0.
func Ground() Building {
	return Building{
		Position: math.Vec3{X: 0, Y: -GroundHeight, Z: 0},
		Width:    GroundSize,
		Depth:    GroundSize,
		Height:   GroundHeight,
		Color:    GroundColor,
	}
}

// Buildings returns the generated buildings without the trailing ground plane.
func (s Scene) Buildings() []Building {
	if len(s) == 0 {
		return nil
	}
	return s[:len(s)-1]
}
