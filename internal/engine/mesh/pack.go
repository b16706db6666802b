package mesh

import (
	"github.com/Faultbox/nightcity/internal/city"
	"github.com/Faultbox/nightcity/pkg/math"
)

// TopTint is added to every channel of the top face vertices. The result is not clamped.
var TopTint = city.Color{R: 0.1, G: 0.1, B: 0.1}

// Corner offsets within a box.
// Bottom face: 0 front-left, 1 front-right, 2 back-right, 3 back-left.
// Top face: 4..7 in the same order. Front is +Z, right is +X.
//
// BoxIndices lists the 12 triangles of a box relative to its base index,
// counter-clockwise when viewed from outside.
var BoxIndices = [IndicesPerBox]uint32{
	0, 2, 1, 2, 0, 3, // bottom
	4, 6, 7, 6, 4, 5, // top
	0, 5, 4, 5, 0, 1, // front
	1, 6, 5, 6, 1, 2, // right
	2, 7, 6, 7, 2, 3, // back
	3, 4, 7, 4, 3, 0, // left
}

// Pack converts a scene into one mesh. Building i owns vertices [8i, 8i+8).
func Pack(scene city.Scene) Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, len(scene)*VerticesPerBox),
		Indices:  make([]uint32, 0, len(scene)*IndicesPerBox),
	}

	for _, b := range scene {
		base := uint32(len(m.Vertices))
		m.Vertices = appendBox(m.Vertices, b)
		for _, off := range BoxIndices {
			m.Indices = append(m.Indices, base+off)
		}
	}
	return m
}

func appendBox(vertices []Vertex, b city.Building) []Vertex {
	hw := b.Width / 2
	hd := b.Depth / 2
	x0, x1 := b.Position.X-hw, b.Position.X+hw
	y0, y1 := b.Position.Y, b.Position.Y+b.Height
	z0, z1 := b.Position.Z-hd, b.Position.Z+hd

	top := b.Color.Add(TopTint)

	return append(vertices,
		Vertex{Position: math.Vec3{X: x0, Y: y0, Z: z1}, Color: b.Color},
		Vertex{Position: math.Vec3{X: x1, Y: y0, Z: z1}, Color: b.Color},
		Vertex{Position: math.Vec3{X: x1, Y: y0, Z: z0}, Color: b.Color},
		Vertex{Position: math.Vec3{X: x0, Y: y0, Z: z0}, Color: b.Color},
		Vertex{Position: math.Vec3{X: x0, Y: y1, Z: z1}, Color: top},
		Vertex{Position: math.Vec3{X: x1, Y: y1, Z: z1}, Color: top},
		Vertex{Position: math.Vec3{X: x1, Y: y1, Z: z0}, Color: top},
		Vertex{Position: math.Vec3{X: x0, Y: y1, Z: z0}, Color: top},
	)
}

// Interleaved flattens the vertices into x, y, z, r, g, b float runs.
func (m Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color.R, v.Color.G, v.Color.B,
		)
	}
	return out
}

// Bounds returns the axis-aligned bounds of all vertices. An empty mesh has zero bounds.
func (m Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
