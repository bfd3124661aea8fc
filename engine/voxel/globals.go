package voxel

const (
	CHUNK_SIZE         int32 = 64
	CHUNK_SIZE_SQUARED int32 = CHUNK_SIZE * CHUNK_SIZE
	CHUNK_SIZE_CUBED   int32 = CHUNK_SIZE * CHUNK_SIZE * CHUNK_SIZE

	// world units covered by one cell along each axis
	CELL_SIZE          float32 = 4
	CELL_CENTER_OFFSET float32 = CELL_SIZE / 2
)

func ManhattanDistance3(a, b Int3) int32 {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y) + Abs(a.Z-b.Z)
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
