package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

// MeshCollider is a static triangle soup taken from a chunk mesh.
type MeshCollider struct {
	name      string
	positions []mgl32.Vec3
	indices   []uint16
	min, max  mgl32.Vec3
}

func NewMeshCollider(name string, mesh *isosurface.Mesh) *MeshCollider {
	m := &MeshCollider{name: name}
	if mesh == nil {
		return m
	}
	m.positions = make([]mgl32.Vec3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		m.positions[i] = v.Position
	}
	m.indices = append([]uint16(nil), mesh.Indices...)
	m.min, m.max = mesh.Bounds()
	return m
}

func (m *MeshCollider) GetName() string {
	return m.name
}

func (m *MeshCollider) TriangleCount() int {
	return len(m.indices) / 3
}

func (m *MeshCollider) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	return m.min, m.max
}

func (m *MeshCollider) IterateTriangles(callback func(triangle [3]mgl32.Vec3)) {
	for i := 0; i+2 < len(m.indices); i += 3 {
		callback([3]mgl32.Vec3{m.positions[m.indices[i]], m.positions[m.indices[i+1]], m.positions[m.indices[i+2]]})
	}
}

// IntersectsRay returns the hit closest to rayStart on the segment.
func (m *MeshCollider) IntersectsRay(rayStart, rayEnd mgl32.Vec3) (bool, mgl32.Vec3) {
	if len(m.indices) == 0 || !voxel.SegmentTouchesBox(rayStart, rayEnd, m.min, m.max) {
		return false, mgl32.Vec3{}
	}
	minDist := float32(math.MaxFloat32)
	doesIntersect := false
	nearestIntersection := mgl32.Vec3{0, 0, 0}
	m.IterateTriangles(func(triangle [3]mgl32.Vec3) {
		intersection, atPoint := intersectLineSegmentTriangle(rayStart, rayEnd, triangle[0], triangle[1], triangle[2])
		if intersection {
			doesIntersect = true
			dist := atPoint.Sub(rayStart).Len()
			if dist < minDist {
				minDist = dist
				nearestIntersection = atPoint
			}
		}
	})
	return doesIntersect, nearestIntersection
}

func (m *MeshCollider) String() string {
	return fmt.Sprintf("MeshCollider{%s, %d triangles, %v - %v}", m.name, m.TriangleCount(), m.min, m.max)
}
