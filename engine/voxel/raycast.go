package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CubeSide int

const (
	NoSide CubeSide = iota
	Front
	Back
	Left
	Right
	Top
	Bottom
)

type RaycastHit struct {
	Hit bool
	// Distance along the ray in the unit of the positions passed in.
	Distance        float64
	Side            CubeSide
	Position        mgl32.Vec3
	Cell            Int3
	PreviousCell    Int3
	HasPreviousCell bool
}

// DDARaycast walks the unit grid cells crossed by the segment from rayStart
// to rayEnd and stops at the first cell for which stopRay returns true.
func DDARaycast(rayStart, rayEnd mgl32.Vec3, stopRay func(x, y, z int32) bool) RaycastHit {
	// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
	t := 0.0
	ix := int32(math.Floor(float64(rayStart.X())))
	iy := int32(math.Floor(float64(rayStart.Y())))
	iz := int32(math.Floor(float64(rayStart.Z())))

	ray := rayEnd.Sub(rayStart)
	maxRayLength := float64(ray.Len())
	if maxRayLength == 0 {
		if stopRay(ix, iy, iz) {
			return RaycastHit{Hit: true, Position: rayStart, Cell: Int3{ix, iy, iz}}
		}
		return RaycastHit{}
	}
	rayDir := ray.Mul(float32(1 / maxRayLength))

	stepx := int32(-1)
	if rayDir.X() > 0 {
		stepx = 1
	}
	stepy := int32(-1)
	if rayDir.Y() > 0 {
		stepy = 1
	}
	stepz := int32(-1)
	if rayDir.Z() > 0 {
		stepz = 1
	}

	txDelta := math.Abs(1.0 / float64(rayDir.X()))
	tyDelta := math.Abs(1.0 / float64(rayDir.Y()))
	tzDelta := math.Abs(1.0 / float64(rayDir.Z()))

	xdist := float64(rayStart.X()) - float64(ix)
	if stepx > 0 {
		xdist = float64(ix+1) - float64(rayStart.X())
	}
	ydist := float64(rayStart.Y()) - float64(iy)
	if stepy > 0 {
		ydist = float64(iy+1) - float64(rayStart.Y())
	}
	zdist := float64(rayStart.Z()) - float64(iz)
	if stepz > 0 {
		zdist = float64(iz+1) - float64(rayStart.Z())
	}

	txMax := math.Inf(1)
	if txDelta < math.Inf(1) {
		txMax = txDelta * xdist
	}
	tyMax := math.Inf(1)
	if tyDelta < math.Inf(1) {
		tyMax = tyDelta * ydist
	}
	tzMax := math.Inf(1)
	if tzDelta < math.Inf(1) {
		tzMax = tzDelta * zdist
	}

	steppedIndex := -1

	for t <= maxRayLength {
		if stopRay(ix, iy, iz) {
			hit := RaycastHit{
				Hit:      true,
				Distance: t,
				Position: rayStart.Add(rayDir.Mul(float32(t))),
				Cell:     Int3{ix, iy, iz},
			}
			switch steppedIndex {
			case 0:
				if stepx > 0 {
					hit.Side = Left
				} else {
					hit.Side = Right
				}
				hit.PreviousCell = Int3{ix - stepx, iy, iz}
			case 1:
				if stepy > 0 {
					hit.Side = Bottom
				} else {
					hit.Side = Top
				}
				hit.PreviousCell = Int3{ix, iy - stepy, iz}
			case 2:
				if stepz > 0 {
					hit.Side = Back
				} else {
					hit.Side = Front
				}
				hit.PreviousCell = Int3{ix, iy, iz - stepz}
			}
			hit.HasPreviousCell = steppedIndex >= 0
			return hit
		}

		if txMax < tyMax {
			if txMax < tzMax {
				ix += stepx
				t = txMax
				txMax += txDelta
				steppedIndex = 0
			} else {
				iz += stepz
				t = tzMax
				tzMax += tzDelta
				steppedIndex = 2
			}
		} else {
			if tyMax < tzMax {
				iy += stepy
				t = tyMax
				tyMax += tyDelta
				steppedIndex = 1
			} else {
				iz += stepz
				t = tzMax
				tzMax += tzDelta
				steppedIndex = 2
			}
		}
	}

	return RaycastHit{}
}

// Raycast finds the first non-air cell along a segment given in world space.
// Distance and Position of the hit are in world units. Segments that touch no
// chunk bounds are rejected without walking the grid.
func (v *Volume) Raycast(start, end mgl32.Vec3) RaycastHit {
	if !v.anyChunkOnSegment(start, end) {
		return RaycastHit{}
	}
	hit := DDARaycast(start.Mul(1/CELL_SIZE), end.Mul(1/CELL_SIZE), func(x, y, z int32) bool {
		return v.IsSolid(Int3{x, y, z})
	})
	if hit.Hit {
		hit.Distance *= float64(CELL_SIZE)
		hit.Position = hit.Position.Mul(CELL_SIZE)
	}
	return hit
}

func (v *Volume) anyChunkOnSegment(start, end mgl32.Vec3) bool {
	found := false
	v.chunks.Range(func(_, value any) bool {
		min, max := value.(*Chunk).AABB()
		found = SegmentTouchesBox(start, end, min, max)
		return !found
	})
	return found
}

// SegmentTouchesBox is a slab test of the segment against an AABB.
func SegmentTouchesBox(start, end, min, max mgl32.Vec3) bool {
	tMin, tMax := float32(0), float32(1)
	direction := end.Sub(start)
	for axis := 0; axis < 3; axis++ {
		if direction[axis] == 0 {
			if start[axis] < min[axis] || start[axis] > max[axis] {
				return false
			}
			continue
		}
		t1 := (min[axis] - start[axis]) / direction[axis]
		t2 := (max[axis] - start[axis]) / direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
