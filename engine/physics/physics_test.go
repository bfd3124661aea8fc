package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

func TestSegmentTriangle(t *testing.T) {
	a, b, c := mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}
	hit, at := intersectLineSegmentTriangle(mgl32.Vec3{0.25, 0.25, 1}, mgl32.Vec3{0.25, 0.25, -1}, a, b, c)
	if !hit || at.Sub(mgl32.Vec3{0.25, 0.25, 0}).Len() > 1e-5 {
		t.Fatalf("got %v %v", hit, at)
	}
	if hit, _ := intersectLineSegmentTriangle(mgl32.Vec3{0.25, 0.25, 2}, mgl32.Vec3{0.25, 0.25, 1}, a, b, c); hit {
		t.Fatalf("segment ends before the triangle")
	}
	if hit, _ := intersectLineSegmentTriangle(mgl32.Vec3{2, 2, 1}, mgl32.Vec3{2, 2, -1}, a, b, c); hit {
		t.Fatalf("segment passes beside the triangle")
	}
}

func TestColliderSetFollowsVolume(t *testing.T) {
	v := voxel.NewVolume()
	cell := voxel.Int3{X: 8, Y: 8, Z: 8}
	v.SetCell(cell, voxel.NewCell(voxel.Stone, -127))
	colliders := NewColliderSet()
	if err := v.RebuildDirty(colliders); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if colliders.Len() != 1 || colliders.Collider(voxel.Int3{}).TriangleCount() != 8 {
		t.Fatalf("collider not built")
	}

	// the surface is an octahedron with its vertices one cell from the center
	center := voxel.CellCenterToWorld(cell)
	target := center.Add(mgl32.Vec3{0.3, 0, 0.2})
	start := target.Add(mgl32.Vec3{0, 20, 0})
	hit, at := colliders.IntersectsRay(start, target)
	if !hit {
		t.Fatalf("ray from above missed the surface")
	}
	if d := at.Sub(center.Add(mgl32.Vec3{0.3, voxel.CELL_SIZE - 0.5, 0.2})).Len(); d > 1e-3 {
		t.Fatalf("hit at %v", at)
	}
	if hit, _ := colliders.IntersectsRay(start, start.Add(mgl32.Vec3{0, 5, 0})); hit {
		t.Fatalf("ray pointing away hit")
	}

	v.SetCell(cell, voxel.NewCell(voxel.Air, 0))
	if err := v.RebuildDirty(colliders); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if colliders.Len() != 0 {
		t.Fatalf("collider of the removed chunk survived")
	}
}

// execute with: go test -bench=. -test.benchmem -test.benchtime=10s
func BenchmarkTriangleSegmentIntersection(b *testing.B) {
	triangle := [3]mgl32.Vec3{
		{1, 0, 0},
		{0, 0, 0},
		{0, 1, 0},
	}
	rayStart := mgl32.Vec3{0.25, 0.25, 1}
	rayEnd := mgl32.Vec3{0.25, 0.25, -1}
	for i := 0; i < b.N; i++ {
		_, _ = intersectLineSegmentTriangle(rayStart, rayEnd, triangle[0], triangle[1], triangle[2])
	}
}
