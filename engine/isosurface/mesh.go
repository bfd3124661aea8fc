package isosurface

import "github.com/go-gl/mathgl/mgl32"

// DensityField is sampled by the extractor at integer lattice points.
// Implementations must answer for points outside their own storage
// (absent data reads as density 0) and must be safe for concurrent reads.
type DensityField interface {
	Density(x, y, z int32) int8
}

type DensityFunc func(x, y, z int32) int8

func (f DensityFunc) Density(x, y, z int32) int8 {
	return f(x, y, z)
}

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh is an indexed triangle list. Indices are 16 bit, so a single mesh
// holds at most 65535 vertices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Indices) == 0
}

// Transform returns a copy with every position mapped through transform.
// Normals are left untouched, so transform must not rotate.
func (m *Mesh) Transform(transform func(mgl32.Vec3) mgl32.Vec3) *Mesh {
	if m == nil {
		return nil
	}
	result := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint16, len(m.Indices)),
	}
	for i, v := range m.Vertices {
		result.Vertices[i] = Vertex{Position: transform(v.Position), Normal: v.Normal}
	}
	copy(result.Indices, m.Indices)
	return result
}

// Bounds returns the axis aligned bounding box of all vertex positions.
func (m *Mesh) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	if m == nil || len(m.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min := m.Vertices[0].Position
	max := min
	for _, v := range m.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < min[axis] {
				min[axis] = v.Position[axis]
			}
			if v.Position[axis] > max[axis] {
				max[axis] = v.Position[axis]
			}
		}
	}
	return min, max
}
