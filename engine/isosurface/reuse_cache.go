package isosurface

import "fmt"

const (
	reuseSlots = 4

	reuseNegX  = 0x01
	reuseNegY  = 0x02
	reuseNegZ  = 0x04
	reuseOwned = 0x08

	noVertex = int32(-1)
)

// ReuseCell holds the vertex indices a cell published for its neighbours.
// Slot 0 is the vertex on the cell's maximal corner, slots 1 to 3 are the
// vertices on the edges leading into that corner.
type ReuseCell [reuseSlots]int32

// ReuseCache keeps two layers of ReuseCell records, the layer being
// traversed and the one before it, so memory stays proportional to the
// area of one chunk face.
type ReuseCache struct {
	size   int32
	layers [2][]ReuseCell
}

func NewReuseCache(size int32) *ReuseCache {
	if size < 1 {
		panic(fmt.Sprintf("[ReuseCache] invalid size %d", size))
	}
	c := &ReuseCache{size: size}
	for i := range c.layers {
		c.layers[i] = make([]ReuseCell, size*size)
		resetLayer(c.layers[i])
	}
	return c
}

func resetLayer(layer []ReuseCell) {
	for i := range layer {
		layer[i] = ReuseCell{noVertex, noVertex, noVertex, noVertex}
	}
}

func (c *ReuseCache) Size() int32 {
	return c.size
}

// BeginLayer clears the records of layer z. It has to be called before the
// first cell of that layer is visited.
func (c *ReuseCache) BeginLayer(z int32) {
	resetLayer(c.layers[z&1])
}

// Reset clears both layers.
func (c *ReuseCache) Reset() {
	resetLayer(c.layers[0])
	resetLayer(c.layers[1])
}

// GetReusedIndex returns the record of the cell reached by stepping back
// one cell from (x, y, z) along every axis whose bit is set in direction.
func (c *ReuseCache) GetReusedIndex(x, y, z int32, direction uint8) ReuseCell {
	rx := x - int32(direction&reuseNegX)
	ry := y - int32((direction&reuseNegY)>>1)
	rz := z - int32((direction&reuseNegZ)>>2)
	if rx < 0 || ry < 0 || rz < 0 {
		panic(fmt.Sprintf("[ReuseCache] step back %#x from (%d, %d, %d) leaves the chunk", direction, x, y, z))
	}
	return c.layers[rz&1][c.index(rx, ry)]
}

func (c *ReuseCache) SetReusableIndex(x, y, z int32, slot uint8, index int32) {
	if slot >= reuseSlots {
		panic(fmt.Sprintf("[ReuseCache] invalid slot %d", slot))
	}
	c.layers[z&1][c.index(x, y)][slot] = index
}

func (c *ReuseCache) index(x, y int32) int32 {
	if x >= c.size || y >= c.size {
		panic(fmt.Sprintf("[ReuseCache] cell (%d, %d) outside of a %d wide layer", x, y, c.size))
	}
	return x + y*c.size
}
