package isosurface

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type edgeKey struct{ a, b uint16 }

// directedEdges counts every directed triangle edge of the mesh.
func directedEdges(mesh *Mesh) map[edgeKey]int {
	edges := make(map[edgeKey]int)
	for i := 0; i < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		edges[edgeKey{a, b}]++
		edges[edgeKey{b, c}]++
		edges[edgeKey{c, a}]++
	}
	return edges
}

// requireClosed checks that every directed edge is used exactly once and
// its reverse exactly once, i.e. the surface is a closed 2-manifold.
func requireClosed(t *testing.T, mesh *Mesh) {
	t.Helper()
	edges := directedEdges(mesh)
	for e, count := range edges {
		if count != 1 {
			t.Fatalf("edge %d->%d used %d times", e.a, e.b, count)
		}
		if edges[edgeKey{e.b, e.a}] != 1 {
			t.Fatalf("edge %d->%d has no opposite", e.a, e.b)
		}
	}
}

// requireBalanced checks that the surface has no holes: every edge is
// traversed as often in one direction as in the other.
func requireBalanced(t *testing.T, mesh *Mesh) {
	t.Helper()
	edges := directedEdges(mesh)
	for e, count := range edges {
		if edges[edgeKey{e.b, e.a}] != count {
			t.Fatalf("edge %d->%d used %d times, reverse %d times", e.a, e.b, count, edges[edgeKey{e.b, e.a}])
		}
	}
}

func triangle(mesh *Mesh, i int) [3]mgl32.Vec3 {
	return [3]mgl32.Vec3{
		mesh.Vertices[mesh.Indices[i]].Position,
		mesh.Vertices[mesh.Indices[i+1]].Position,
		mesh.Vertices[mesh.Indices[i+2]].Position,
	}
}

// requireFacingAway checks that every triangle faces away from center.
func requireFacingAway(t *testing.T, mesh *Mesh, center mgl32.Vec3) {
	t.Helper()
	for i := 0; i < len(mesh.Indices); i += 3 {
		tri := triangle(mesh, i)
		faceNormal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
		centroid := tri[0].Add(tri[1]).Add(tri[2]).Mul(1.0 / 3.0)
		if faceNormal.Dot(centroid.Sub(center)) <= 0 {
			t.Fatalf("triangle %d %v faces towards %v", i/3, tri, center)
		}
	}
}

func requireNoDuplicatePositions(t *testing.T, mesh *Mesh) {
	t.Helper()
	seen := make(map[mgl32.Vec3]int)
	for i, v := range mesh.Vertices {
		if other, ok := seen[v.Position]; ok {
			t.Fatalf("vertex %d and %d share position %v", other, i, v.Position)
		}
		seen[v.Position] = i
	}
}

func singlePointField(px, py, pz int32) DensityFunc {
	return func(x, y, z int32) int8 {
		if x == px && y == py && z == pz {
			return -127
		}
		return 0
	}
}

func sphereField(cx, cy, cz, radius float64) DensityFunc {
	return func(x, y, z int32) int8 {
		dx, dy, dz := float64(x)-cx, float64(y)-cy, float64(z)-cz
		d := math.Round((math.Sqrt(dx*dx+dy*dy+dz*dz) - radius) * 32)
		if d < -127 {
			d = -127
		}
		if d > 127 {
			d = 127
		}
		return int8(d)
	}
}

func boxField(min, max [3]int32, inside int8) DensityFunc {
	return func(x, y, z int32) int8 {
		if x >= min[0] && x <= max[0] && y >= min[1] && y <= max[1] && z >= min[2] && z <= max[2] {
			return inside
		}
		return 0
	}
}

func uniformField(d int8) DensityFunc {
	return func(x, y, z int32) int8 {
		return d
	}
}

// noiseField is a deterministic pseudo random field with mixed signs.
func noiseField(seed uint32, values []int8) DensityFunc {
	return func(x, y, z int32) int8 {
		h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ uint32(z)*83492791 ^ seed*2654435761
		h ^= h >> 13
		h *= 0x5bd1e995
		h ^= h >> 15
		return values[h%uint32(len(values))]
	}
}
