package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVolumeRaycast(t *testing.T) {
	v := NewVolume()
	target := Int3{10, 3, -2}
	v.SetCell(target, NewCell(Stone, -50))

	start := CellCenterToWorld(Int3{0, 3, -2})
	end := CellCenterToWorld(Int3{20, 3, -2})
	hit := v.Raycast(start, end)
	if !hit.Hit || hit.Cell != target {
		t.Fatalf("got %+v", hit)
	}
	if !hit.HasPreviousCell || hit.PreviousCell != (Int3{9, 3, -2}) || hit.Side != Left {
		t.Fatalf("wrong entry side: %+v", hit)
	}
	if want := float64(10*CELL_SIZE - CELL_CENTER_OFFSET); hit.Distance < want-1e-3 || hit.Distance > want+1e-3 {
		t.Fatalf("distance %f, want %f", hit.Distance, want)
	}

	miss := v.Raycast(start, CellCenterToWorld(Int3{0, 30, -2}))
	if miss.Hit {
		t.Fatalf("unexpected hit %+v", miss)
	}
}

func TestDDARaycastDownwards(t *testing.T) {
	hit := DDARaycast(mgl32.Vec3{0.5, 10.5, 0.5}, mgl32.Vec3{0.5, -10, 0.5}, func(x, y, z int32) bool {
		return y < 0
	})
	if !hit.Hit || hit.Cell != (Int3{0, -1, 0}) || hit.PreviousCell != (Int3{0, 0, 0}) || hit.Side != Top {
		t.Fatalf("got %+v", hit)
	}
}

func TestChunkAABBCoversItsCells(t *testing.T) {
	v := NewVolume()
	cell := Int3{-1, 70, 130}
	v.SetCell(cell, NewCell(Stone, -50))
	chunk := v.ChunkAt(ChunkCoordOf(cell))
	min, max := chunk.AABB()
	if min != (mgl32.Vec3{-64, 64, 128}).Mul(CELL_SIZE) || max != (mgl32.Vec3{0, 128, 192}).Mul(CELL_SIZE) {
		t.Fatalf("got %v - %v", min, max)
	}
	center := CellCenterToWorld(cell)
	for axis := 0; axis < 3; axis++ {
		if center[axis] < min[axis] || center[axis] > max[axis] {
			t.Fatalf("cell center %v outside %v - %v", center, min, max)
		}
	}
}

func TestRaycastRejectsSegmentsOutsideChunks(t *testing.T) {
	v := NewVolume()
	target := Int3{CHUNK_SIZE + 4, 3, 3}
	v.SetCell(target, NewCell(Stone, -50))

	// stays inside chunk 0, which does not exist
	inside := v.Raycast(CellCenterToWorld(Int3{1, 3, 3}), CellCenterToWorld(Int3{CHUNK_SIZE - 2, 3, 3}))
	if inside.Hit {
		t.Fatalf("unexpected hit %+v", inside)
	}
	if v.anyChunkOnSegment(CellCenterToWorld(Int3{1, 3, 3}), CellCenterToWorld(Int3{CHUNK_SIZE - 2, 3, 3})) {
		t.Fatalf("segment in an empty chunk touches a chunk")
	}

	hit := v.Raycast(CellCenterToWorld(Int3{1, 3, 3}), CellCenterToWorld(Int3{2 * CHUNK_SIZE, 3, 3}))
	if !hit.Hit || hit.Cell != target {
		t.Fatalf("got %+v", hit)
	}

	empty := NewVolume()
	if miss := empty.Raycast(mgl32.Vec3{}, mgl32.Vec3{100, 100, 100}); miss.Hit {
		t.Fatalf("hit in an empty volume: %+v", miss)
	}
}

func TestSegmentTouchesBox(t *testing.T) {
	min, max := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}
	cases := []struct {
		start, end mgl32.Vec3
		want       bool
	}{
		{mgl32.Vec3{-1, 0.5, 0.5}, mgl32.Vec3{2, 0.5, 0.5}, true},
		{mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, true},
		{mgl32.Vec3{-2, 0.5, 0.5}, mgl32.Vec3{-1, 0.5, 0.5}, false},
		{mgl32.Vec3{-1, 2, 0.5}, mgl32.Vec3{2, 2, 0.5}, false},
		{mgl32.Vec3{-1, -1, 0.5}, mgl32.Vec3{2, 2, 0.5}, true},
	}
	for i, c := range cases {
		if got := SegmentTouchesBox(c.start, c.end, min, max); got != c.want {
			t.Fatalf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}
