package voxel

// densitySnapshot is a copy of the densities one chunk extraction reads:
// the chunk itself plus one cell below and two cells above on every axis,
// which covers the upper corners and the central differences around them.
type densitySnapshot struct {
	volume *Volume
	min    Int3
	size   int32
	values []int8
}

const (
	snapshotMarginLow  int32 = 1
	snapshotMarginHigh int32 = 2
)

func newDensitySnapshot(v *Volume, chunk Int3) *densitySnapshot {
	size := CHUNK_SIZE + snapshotMarginLow + snapshotMarginHigh
	s := &densitySnapshot{
		volume: v,
		min:    ChunkOrigin(chunk).Sub(Int3{snapshotMarginLow, snapshotMarginLow, snapshotMarginLow}),
		size:   size,
		values: make([]int8, size*size*size),
	}
	max := s.min.Add(Int3{size - 1, size - 1, size - 1})
	for dz := int32(-1); dz <= 1; dz++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dx := int32(-1); dx <= 1; dx++ {
				neighbor := v.ChunkAt(chunk.Add(Int3{dx, dy, dz}))
				if neighbor == nil {
					continue
				}
				s.copyFrom(neighbor, max)
			}
		}
	}
	return s
}

func (s *densitySnapshot) copyFrom(c *Chunk, max Int3) {
	origin := c.Origin()
	from := Int3{max32(origin.X, s.min.X), max32(origin.Y, s.min.Y), max32(origin.Z, s.min.Z)}
	to := Int3{
		min32(origin.X+CHUNK_SIZE-1, max.X),
		min32(origin.Y+CHUNK_SIZE-1, max.Y),
		min32(origin.Z+CHUNK_SIZE-1, max.Z),
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	for z := from.Z; z <= to.Z; z++ {
		for y := from.Y; y <= to.Y; y++ {
			for x := from.X; x <= to.X; x++ {
				cell := c.data[blockIndex(x-origin.X, y-origin.Y, z-origin.Z)]
				s.values[s.index(x, y, z)] = cell.Density
			}
		}
	}
}

func (s *densitySnapshot) index(x, y, z int32) int32 {
	return (x - s.min.X) + (y-s.min.Y)*s.size + (z-s.min.Z)*s.size*s.size
}

func (s *densitySnapshot) Density(x, y, z int32) int8 {
	lx, ly, lz := x-s.min.X, y-s.min.Y, z-s.min.Z
	if lx < 0 || ly < 0 || lz < 0 || lx >= s.size || ly >= s.size || lz >= s.size {
		return s.volume.Density(x, y, z)
	}
	return s.values[s.index(x, y, z)]
}
