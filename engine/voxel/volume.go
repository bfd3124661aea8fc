package voxel

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/util"
)

// Volume is a sparse, unbounded grid of cells stored in chunks. A chunk
// exists exactly while it holds at least one non-air cell.
//
// The chunk map is creation-exclusive: two writers racing on a missing
// chunk end up with the same instance. Writes to cells are serialized per
// chunk by the chunk's own lock.
type Volume struct {
	chunks  sync.Map // Int3 -> *Chunk
	workers int

	removedMutex sync.Mutex
	removed      map[Int3][]*Chunk

	extractors sync.Pool
}

func NewVolume() *Volume {
	v := &Volume{
		workers: runtime.NumCPU(),
		removed: make(map[Int3][]*Chunk),
	}
	v.extractors.New = func() any {
		return isosurface.NewExtractor(CHUNK_SIZE)
	}
	return v
}

// SetWorkers sets the worker count for FillRegion and Clear, 0 uses every CPU.
func (v *Volume) SetWorkers(workers int) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	v.workers = workers
}

func (v *Volume) Workers() int {
	return v.workers
}

func (v *Volume) acquireExtractor() *isosurface.Extractor {
	return v.extractors.Get().(*isosurface.Extractor)
}

func (v *Volume) releaseExtractor(e *isosurface.Extractor) {
	v.extractors.Put(e)
}

func (v *Volume) ChunkAt(position Int3) *Chunk {
	if c, ok := v.chunks.Load(position); ok {
		return c.(*Chunk)
	}
	return nil
}

func (v *Volume) ChunkExists(position Int3) bool {
	_, ok := v.chunks.Load(position)
	return ok
}

func (v *Volume) getOrCreateChunk(position Int3) *Chunk {
	if c, ok := v.chunks.Load(position); ok {
		return c.(*Chunk)
	}
	actual, _ := v.chunks.LoadOrStore(position, newChunk(v, position))
	return actual.(*Chunk)
}

// removeChunk is called by a chunk that became empty, with its lock held.
func (v *Volume) removeChunk(c *Chunk) {
	v.chunks.CompareAndDelete(c.position, c)
	v.removedMutex.Lock()
	v.removed[c.position] = append(v.removed[c.position], c)
	v.removedMutex.Unlock()
	util.LogVoxelDebug(fmt.Sprintf("[Volume] Chunk %s removed", c.position))
}

func (v *Volume) ChunkCount() int {
	count := 0
	v.chunks.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// ForEachChunk visits the live chunks in ascending coordinate order.
func (v *Volume) ForEachChunk(fn func(c *Chunk)) {
	for _, c := range v.sortedChunks() {
		fn(c)
	}
}

func (v *Volume) sortedChunks() []*Chunk {
	var chunks []*Chunk
	v.chunks.Range(func(_, value any) bool {
		chunks = append(chunks, value.(*Chunk))
		return true
	})
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].position.Less(chunks[j].position)
	})
	return chunks
}

// GetCell returns the cell at a cell coordinate. Cells of absent chunks are air.
func (v *Volume) GetCell(cell Int3) Cell {
	chunk := v.ChunkAt(ChunkCoordOf(cell))
	if chunk == nil {
		return Cell{}
	}
	local := LocalCoordOf(cell)
	chunk.mutex.RLock()
	defer chunk.mutex.RUnlock()
	return chunk.data[blockIndex(local.X, local.Y, local.Z)]
}

// Density makes the volume an isosurface.DensityField.
func (v *Volume) Density(x, y, z int32) int8 {
	return v.GetCell(Int3{x, y, z}).Density
}

func (v *Volume) IsSolid(cell Int3) bool {
	return !v.GetCell(cell).IsAir()
}

// SetCell writes one cell. The owning chunk is created on demand and
// removed again when its last non-air cell is cleared. Chunks whose
// surface depends on the cell are marked dirty, no geometry is rebuilt.
func (v *Volume) SetCell(cell Int3, value Cell) {
	value = NewCell(value.Material, value.Density)
	position := ChunkCoordOf(cell)
	local := LocalCoordOf(cell)
	for {
		chunk := v.ChunkAt(position)
		if chunk == nil {
			if value.IsAir() {
				return
			}
			chunk = v.getOrCreateChunk(position)
		}
		changed, written := chunk.set(local.X, local.Y, local.Z, value)
		if !written {
			// retired between lookup and write, the map no longer holds it
			continue
		}
		if changed {
			v.markNeighborsDirty(cell)
		}
		return
	}
}

// markNeighborsDirty flags other chunks that sample the cell. A chunk
// reads one cell below its origin and two cells beyond its far side.
func (v *Volume) markNeighborsDirty(cell Int3) {
	local := LocalCoordOf(cell)
	if local.X >= snapshotMarginHigh && local.X < CHUNK_SIZE-snapshotMarginLow &&
		local.Y >= snapshotMarginHigh && local.Y < CHUNK_SIZE-snapshotMarginLow &&
		local.Z >= snapshotMarginHigh && local.Z < CHUNK_SIZE-snapshotMarginLow {
		return
	}
	own := ChunkCoordOf(cell)
	from := ChunkCoordOf(cell.Sub(Int3{snapshotMarginHigh, snapshotMarginHigh, snapshotMarginHigh}))
	to := ChunkCoordOf(cell.Add(Int3{snapshotMarginLow, snapshotMarginLow, snapshotMarginLow}))
	for z := from.Z; z <= to.Z; z++ {
		for y := from.Y; y <= to.Y; y++ {
			for x := from.X; x <= to.X; x++ {
				position := Int3{x, y, z}
				if position == own {
					continue
				}
				if neighbor := v.ChunkAt(position); neighbor != nil {
					neighbor.SetDirty()
				}
			}
		}
	}
}

// FillRegion writes the same cell to every coordinate of the region. The
// outer axis is split across a worker pool.
func (v *Volume) FillRegion(region Region, material Material, density int8) {
	cell := NewCell(material, density)
	pool := pond.NewPool(v.workers)
	for x := region.Min.X; x <= region.Max.X; x++ {
		x := x
		pool.Submit(func() {
			for y := region.Min.Y; y <= region.Max.Y; y++ {
				for z := region.Min.Z; z <= region.Max.Z; z++ {
					v.SetCell(Int3{x, y, z}, cell)
				}
			}
		})
	}
	pool.StopAndWait()
	util.LogVoxelDebug(fmt.Sprintf("[Volume] Filled %d cells with %s", region.CellCount(), cell))
}

// FillFunc writes the cells produced by fn for every coordinate of the
// region, in parallel like FillRegion. fn must be safe for concurrent use.
func (v *Volume) FillFunc(region Region, fn func(c Int3) (Cell, bool)) {
	pool := pond.NewPool(v.workers)
	for x := region.Min.X; x <= region.Max.X; x++ {
		x := x
		pool.Submit(func() {
			for y := region.Min.Y; y <= region.Max.Y; y++ {
				for z := region.Min.Z; z <= region.Max.Z; z++ {
					c := Int3{x, y, z}
					if cell, ok := fn(c); ok {
						v.SetCell(c, cell)
					}
				}
			}
		})
	}
	pool.StopAndWait()
}

// Clear empties the volume. Every chunk is zeroed and dropped.
func (v *Volume) Clear() {
	chunks := v.sortedChunks()
	pool := pond.NewPool(v.workers)
	for _, c := range chunks {
		c := c
		pool.Submit(c.clear)
	}
	pool.StopAndWait()
	util.LogVoxelInfo(fmt.Sprintf("[Volume] Cleared %d chunks", len(chunks)))
}

func (v *Volume) takeRemoved() map[Int3][]*Chunk {
	v.removedMutex.Lock()
	defer v.removedMutex.Unlock()
	removed := v.removed
	v.removed = make(map[Int3][]*Chunk)
	return removed
}

func (v *Volume) releaseRemoved(renderer ChunkRenderer) {
	for position, chunks := range v.takeRemoved() {
		if !releaseGeometry(chunks) || renderer == nil {
			continue
		}
		if live := v.ChunkAt(position); live != nil && live.HasGeometry() {
			// the replacement already uploaded over the old mesh
			continue
		}
		renderer.ReleaseChunkMesh(position)
	}
}

func releaseGeometry(chunks []*Chunk) bool {
	released := false
	for _, c := range chunks {
		c.buildMutex.Lock()
		if c.hasGeometry {
			c.hasGeometry = false
			released = true
		}
		c.buildMutex.Unlock()
	}
	return released
}

// RebuildDirty releases the geometry of removed chunks and rebuilds every
// dirty chunk. All chunks are attempted; the first error is returned.
func (v *Volume) RebuildDirty(renderer ChunkRenderer) error {
	v.releaseRemoved(renderer)

	var firstErr error
	rebuilt, triangles := 0, 0
	for _, c := range v.sortedChunks() {
		if !c.IsDirty() {
			continue
		}
		if err := c.BuildGeometry(renderer); err != nil {
			util.LogMeshError(fmt.Sprintf("[Volume] %v", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		rebuilt++
		triangles += c.Mesh().TriangleCount()
	}
	if rebuilt > 0 {
		util.LogMeshInfo(fmt.Sprintf("[Volume] Rebuilt %d chunks, %d triangles", rebuilt, triangles))
	}
	return firstErr
}

// Stats summarizes the volume for logging.
type Stats struct {
	Chunks        int
	OccupiedCells int64
	Triangles     int
	DirtyChunks   int
}

func (v *Volume) Stats() Stats {
	var s Stats
	v.ForEachChunk(func(c *Chunk) {
		s.Chunks++
		s.OccupiedCells += int64(c.OccupiedCells())
		s.Triangles += c.Mesh().TriangleCount()
		if c.IsDirty() {
			s.DirtyChunks++
		}
	})
	return s
}
