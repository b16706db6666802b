// Package mesh packs city buildings into a single indexed triangle mesh.
package mesh

import (
	"github.com/Faultbox/nightcity/internal/city"
	"github.com/Faultbox/nightcity/pkg/math"
)

// Vertex is one interleaved position + color vertex.
type Vertex struct {
	Position math.Vec3
	Color    city.Color
}

// Layout of a packed box.
const (
	FloatsPerVertex = 6
	VerticesPerBox  = 8
	IndicesPerBox   = 36
)

// Mesh holds the packed city mesh ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the bounds on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
