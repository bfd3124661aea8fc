package voxel

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func (i Int3) Less(other Int3) bool {
	if i.X != other.X {
		return i.X < other.X
	}
	if i.Y != other.Y {
		return i.Y < other.Y
	}
	return i.Z < other.Z
}

func (i Int3) String() string {
	return fmt.Sprintf("%d,%d,%d", i.X, i.Y, i.Z)
}

// FloorDiv divides rounding towards negative infinity, so -1 / 64 is -1.
func FloorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func FloorMod(a, b int32) int32 {
	return a - FloorDiv(a, b)*b
}

func ChunkCoordOf(cell Int3) Int3 {
	return Int3{FloorDiv(cell.X, CHUNK_SIZE), FloorDiv(cell.Y, CHUNK_SIZE), FloorDiv(cell.Z, CHUNK_SIZE)}
}

func LocalCoordOf(cell Int3) Int3 {
	return Int3{FloorMod(cell.X, CHUNK_SIZE), FloorMod(cell.Y, CHUNK_SIZE), FloorMod(cell.Z, CHUNK_SIZE)}
}

func ChunkOrigin(chunk Int3) Int3 {
	return chunk.Mul(CHUNK_SIZE)
}

func WorldToCell(position mgl32.Vec3) Int3 {
	return Int3{
		int32(math.Floor(float64(position.X() / CELL_SIZE))),
		int32(math.Floor(float64(position.Y() / CELL_SIZE))),
		int32(math.Floor(float64(position.Z() / CELL_SIZE))),
	}
}

func CellCenterToWorld(cell Int3) mgl32.Vec3 {
	return cell.ToVec3().Mul(CELL_SIZE).Add(mgl32.Vec3{CELL_CENTER_OFFSET, CELL_CENTER_OFFSET, CELL_CENTER_OFFSET})
}

// LatticeToWorld maps a position in cell units, as produced by the
// isosurface extractor, to world space. Densities are sampled at cell centers.
func LatticeToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return p.Mul(CELL_SIZE).Add(mgl32.Vec3{CELL_CENTER_OFFSET, CELL_CENTER_OFFSET, CELL_CENTER_OFFSET})
}

// Region is an inclusive box of cell coordinates.
type Region struct {
	Min, Max Int3
}

func NewRegion(a, b Int3) Region {
	return Region{
		Min: Int3{min32(a.X, b.X), min32(a.Y, b.Y), min32(a.Z, b.Z)},
		Max: Int3{max32(a.X, b.X), max32(a.Y, b.Y), max32(a.Z, b.Z)},
	}
}

func (r Region) Contains(c Int3) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y && c.Z >= r.Min.Z && c.Z <= r.Max.Z
}

func (r Region) Size() Int3 {
	return r.Max.Sub(r.Min).Add(Int3{1, 1, 1})
}

func (r Region) CellCount() int64 {
	s := r.Size()
	return int64(s.X) * int64(s.Y) * int64(s.Z)
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
