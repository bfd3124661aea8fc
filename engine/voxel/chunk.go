package voxel

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/pkg/errors"
)

// Chunk stores CHUNK_SIZE³ cells densely. Cell writes and the occupancy
// counter are guarded by mutex, geometry state by buildMutex.
type Chunk struct {
	mutex         sync.RWMutex
	data          []Cell
	volume        *Volume
	position      Int3
	occupiedCells int32
	retired       bool
	isDirty       atomic.Bool

	buildMutex  sync.Mutex
	mesh        *isosurface.Mesh
	hasGeometry bool
}

func newChunk(volume *Volume, position Int3) *Chunk {
	c := &Chunk{
		data:     make([]Cell, CHUNK_SIZE_CUBED),
		volume:   volume,
		position: position,
	}
	c.isDirty.Store(true)
	return c
}

func blockIndex(i, j, k int32) int32 {
	return i + j*CHUNK_SIZE + k*CHUNK_SIZE_SQUARED
}

func (c *Chunk) Contains(x, y, z int32) bool {
	return x >= 0 && x < CHUNK_SIZE && y >= 0 && y < CHUNK_SIZE && z >= 0 && z < CHUNK_SIZE
}

func (c *Chunk) mustContain(x, y, z int32) {
	if !c.Contains(x, y, z) {
		panic(fmt.Sprintf("[Chunk] local coordinate %d,%d,%d outside of chunk", x, y, z))
	}
}

func (c *Chunk) Position() Int3 {
	return c.position
}

// Origin is the cell coordinate of local cell 0,0,0.
func (c *Chunk) Origin() Int3 {
	return ChunkOrigin(c.position)
}

func (c *Chunk) Get(x, y, z int32) Cell {
	c.mustContain(x, y, z)
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.data[blockIndex(x, y, z)]
}

// Set writes a cell by local coordinate and marks the chunk dirty.
func (c *Chunk) Set(x, y, z int32, cell Cell) {
	c.mustContain(x, y, z)
	if c.volume != nil {
		c.volume.SetCell(c.Origin().Add(Int3{x, y, z}), cell)
		return
	}
	c.set(x, y, z, NewCell(cell.Material, cell.Density))
}

// set reports whether the stored cell changed. written is false if the chunk
// was retired before the write could happen.
func (c *Chunk) set(x, y, z int32, cell Cell) (changed, written bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.retired {
		return false, false
	}
	index := blockIndex(x, y, z)
	previous := c.data[index]
	if previous == cell {
		return false, true
	}
	c.data[index] = cell
	if previous.IsAir() && !cell.IsAir() {
		c.occupiedCells++
	} else if !previous.IsAir() && cell.IsAir() {
		c.occupiedCells--
	}
	c.isDirty.Store(true)
	if c.occupiedCells == 0 {
		c.retireLocked()
	}
	return true, true
}

// clear empties the chunk and takes it out of its volume.
func (c *Chunk) clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.retired {
		return
	}
	for i := range c.data {
		c.data[i] = Cell{}
	}
	c.occupiedCells = 0
	c.isDirty.Store(true)
	c.retireLocked()
}

func (c *Chunk) retireLocked() {
	c.retired = true
	if c.volume != nil {
		c.volume.removeChunk(c)
	}
}

func (c *Chunk) OccupiedCells() int32 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.occupiedCells
}

func (c *Chunk) IsRetired() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.retired
}

func (c *Chunk) IsDirty() bool {
	return c.isDirty.Load()
}

func (c *Chunk) SetDirty() {
	c.isDirty.Store(true)
}

// Cells returns a copy of the dense cell array, indexed x + y*S + z*S².
func (c *Chunk) Cells() []Cell {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]Cell, len(c.data))
	copy(result, c.data)
	return result
}

func (c *Chunk) Neighbor(side FaceType) *Chunk {
	if c.volume == nil {
		return nil
	}
	return c.volume.ChunkAt(c.position.Add(side.Offset()))
}

// Mesh returns the geometry of the last successful build in world space.
func (c *Chunk) Mesh() *isosurface.Mesh {
	c.buildMutex.Lock()
	defer c.buildMutex.Unlock()
	return c.mesh
}

func (c *Chunk) HasGeometry() bool {
	c.buildMutex.Lock()
	defer c.buildMutex.Unlock()
	return c.hasGeometry
}

func (c *Chunk) AABB() (mgl32.Vec3, mgl32.Vec3) {
	min := c.Origin().ToVec3().Mul(CELL_SIZE)
	max := c.Origin().Add(Int3{CHUNK_SIZE, CHUNK_SIZE, CHUNK_SIZE}).ToVec3().Mul(CELL_SIZE)
	return min, max
}

// BuildGeometry re-extracts the surface of a dirty chunk and hands it to the
// renderer. A clean chunk is left alone. The renderer may be nil for
// headless use. If the upload fails the chunk stays dirty.
func (c *Chunk) BuildGeometry(renderer ChunkRenderer) error {
	c.buildMutex.Lock()
	defer c.buildMutex.Unlock()

	// cleared up front so writes racing with the extraction mark it again
	if !c.isDirty.CompareAndSwap(true, false) {
		return nil
	}

	mesh, err := c.extract()
	if err != nil {
		c.isDirty.Store(true)
		return errors.Wrapf(err, "chunk %s", c.position)
	}

	if renderer != nil && c.hasGeometry {
		renderer.ReleaseChunkMesh(c.position)
		c.hasGeometry = false
	}
	c.mesh = mesh

	if renderer != nil && !mesh.IsEmpty() {
		if err := renderer.UploadChunkMesh(c.position, mesh); err != nil {
			c.isDirty.Store(true)
			return errors.Wrapf(err, "upload of chunk %s", c.position)
		}
		c.hasGeometry = true
	}
	util.LogMeshDebug(fmt.Sprintf("[Chunk] %s was meshed into %d triangles", c.position, mesh.TriangleCount()))
	return nil
}

func (c *Chunk) extract() (*isosurface.Mesh, error) {
	origin := c.Origin()
	if c.volume == nil {
		return &isosurface.Mesh{}, nil
	}
	field := newDensitySnapshot(c.volume, c.position)
	extractor := c.volume.acquireExtractor()
	defer c.volume.releaseExtractor(extractor)

	mesh, err := extractor.Extract(field, [3]int32{origin.X, origin.Y, origin.Z}, 1)
	if err != nil {
		return nil, err
	}
	offset := origin.ToVec3()
	return mesh.Transform(func(p mgl32.Vec3) mgl32.Vec3 {
		return LatticeToWorld(p.Add(offset))
	}), nil
}
