package isosurface

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var ErrIndexOverflow = errors.New("mesh exceeds the 16 bit index range")

const maxVertices = math.MaxUint16

// Extractor turns a density field into a triangle mesh, one cubic block of
// cells at a time. It keeps its reuse cache and scratch buffers between
// calls and must not be shared between goroutines.
type Extractor struct {
	cells   int32
	cache   *ReuseCache
	corners [8]int8
	local   [12]int32
}

func NewExtractor(cells int32) *Extractor {
	return &Extractor{
		cells: cells,
		cache: NewReuseCache(cells),
	}
}

func (e *Extractor) Cells() int32 {
	return e.cells
}

func cornerOffset(i int) (int32, int32, int32) {
	return int32(i & 1), int32((i >> 1) & 1), int32((i >> 2) & 1)
}

// Extract builds the surface of the block of cells starting at lattice
// point origin. With lod > 1 every lod-th lattice point is sampled.
// Vertex positions are relative to origin, measured in lattice units.
func (e *Extractor) Extract(field DensityField, origin [3]int32, lod int32) (*Mesh, error) {
	if lod < 1 {
		panic(fmt.Sprintf("[Extractor] invalid lod %d", lod))
	}
	if e.cells%lod != 0 {
		panic(fmt.Sprintf("[Extractor] lod %d does not divide %d cells", lod, e.cells))
	}
	n := e.cells / lod
	mesh := &Mesh{}
	e.cache.Reset()

	for z := int32(0); z < n; z++ {
		e.cache.BeginLayer(z)
		for y := int32(0); y < n; y++ {
			for x := int32(0); x < n; x++ {
				if err := e.polygonizeCell(field, origin, lod, x, y, z, mesh); err != nil {
					return nil, err
				}
			}
		}
	}
	return mesh, nil
}

func (e *Extractor) polygonizeCell(field DensityField, origin [3]int32, lod, x, y, z int32, mesh *Mesh) error {
	var caseCode uint8
	for i := 0; i < 8; i++ {
		cx, cy, cz := cornerOffset(i)
		e.corners[i] = field.Density(origin[0]+(x+cx)*lod, origin[1]+(y+cy)*lod, origin[2]+(z+cz)*lod)
		if e.corners[i] < 0 {
			caseCode |= 1 << uint(i)
		}
	}
	if caseCode == 0 || caseCode == 0xFF {
		return nil
	}

	var valid uint8
	if x > 0 {
		valid |= reuseNegX
	}
	if y > 0 {
		valid |= reuseNegY
	}
	if z > 0 {
		valid |= reuseNegZ
	}

	cell := regularCellData[regularCellClass[caseCode]]
	vertexCodes := regularVertexData[caseCode]
	vertexCount := cell.VertexCount()

	for i := 0; i < vertexCount; i++ {
		code := vertexCodes[i]
		v0 := int((code >> 4) & 0x0F)
		v1 := int(code & 0x0F)
		d0 := int32(e.corners[v0])
		d1 := int32(e.corners[v1])
		t := (d1 << 8) / (d1 - d0)

		var index int32
		var err error
		if t&0xFF != 0 {
			index, err = e.edgeVertex(field, origin, lod, x, y, z, code, v0, v1, t, valid, mesh)
		} else {
			corner := v1
			if t != 0 {
				corner = v0
			}
			index, err = e.cornerVertex(field, origin, lod, x, y, z, corner, valid, mesh)
		}
		if err != nil {
			return err
		}
		e.local[i] = index
	}

	triangles := cell.TriangleCount()
	for i := 0; i < triangles*3; i += 3 {
		a := e.local[cell.vertexIndex[i]]
		b := e.local[cell.vertexIndex[i+1]]
		c := e.local[cell.vertexIndex[i+2]]
		if a == b || b == c || a == c {
			continue
		}
		mesh.Indices = append(mesh.Indices, uint16(a), uint16(b), uint16(c))
	}
	return nil
}

func (e *Extractor) edgeVertex(field DensityField, origin [3]int32, lod, x, y, z int32, code uint16, v0, v1 int, t int32, valid uint8, mesh *Mesh) (int32, error) {
	direction := uint8(code >> 12)
	slot := uint8((code >> 8) & 0x0F)

	if direction&valid == direction {
		if index := e.cache.GetReusedIndex(x, y, z, direction)[slot]; index != noVertex {
			return index, nil
		}
	}

	u := 256 - t
	p0 := e.cornerLattice(x, y, z, v0)
	p1 := e.cornerLattice(x, y, z, v1)
	position := mgl32.Vec3{
		float32(t*p0[0]*lod+u*p1[0]*lod) / 256,
		float32(t*p0[1]*lod+u*p1[1]*lod) / 256,
		float32(t*p0[2]*lod+u*p1[2]*lod) / 256,
	}
	g0 := gradient(field, origin, lod, p0)
	g1 := gradient(field, origin, lod, p1)
	normal := mgl32.Vec3{
		float32(t*g0[0] + u*g1[0]),
		float32(t*g0[1] + u*g1[1]),
		float32(t*g0[2] + u*g1[2]),
	}

	index, err := appendVertex(mesh, position, normal)
	if err != nil {
		return 0, err
	}
	if direction&reuseOwned != 0 {
		e.cache.SetReusableIndex(x, y, z, slot, index)
	}
	return index, nil
}

// cornerVertex handles a vertex that lands exactly on a lattice point. Such
// a vertex is published in slot 0 of the cell that has the point as its
// maximal corner, so every cell touching the point shares it.
func (e *Extractor) cornerVertex(field DensityField, origin [3]int32, lod, x, y, z int32, corner int, valid uint8, mesh *Mesh) (int32, error) {
	direction := uint8(corner ^ 7)
	ownerInside := direction&valid == direction

	if ownerInside {
		if index := e.cache.GetReusedIndex(x, y, z, direction)[0]; index != noVertex {
			return index, nil
		}
	}

	p := e.cornerLattice(x, y, z, corner)
	position := mgl32.Vec3{float32(p[0] * lod), float32(p[1] * lod), float32(p[2] * lod)}
	g := gradient(field, origin, lod, p)
	normal := mgl32.Vec3{float32(g[0]), float32(g[1]), float32(g[2])}

	index, err := appendVertex(mesh, position, normal)
	if err != nil {
		return 0, err
	}
	if ownerInside {
		ox := x - int32(direction&reuseNegX)
		oy := y - int32((direction&reuseNegY)>>1)
		oz := z - int32((direction&reuseNegZ)>>2)
		e.cache.SetReusableIndex(ox, oy, oz, 0, index)
	}
	return index, nil
}

func (e *Extractor) cornerLattice(x, y, z int32, corner int) [3]int32 {
	cx, cy, cz := cornerOffset(corner)
	return [3]int32{x + cx, y + cy, z + cz}
}

// gradient is the central difference of the field around a lattice point,
// given in block-local lattice coordinates.
func gradient(field DensityField, origin [3]int32, lod int32, p [3]int32) [3]int32 {
	wx := origin[0] + p[0]*lod
	wy := origin[1] + p[1]*lod
	wz := origin[2] + p[2]*lod
	return [3]int32{
		int32(field.Density(wx+lod, wy, wz)) - int32(field.Density(wx-lod, wy, wz)),
		int32(field.Density(wx, wy+lod, wz)) - int32(field.Density(wx, wy-lod, wz)),
		int32(field.Density(wx, wy, wz+lod)) - int32(field.Density(wx, wy, wz-lod)),
	}
}

func appendVertex(mesh *Mesh, position, normal mgl32.Vec3) (int32, error) {
	if len(mesh.Vertices) >= maxVertices {
		return 0, errors.Wrapf(ErrIndexOverflow, "more than %d vertices", maxVertices)
	}
	mesh.Vertices = append(mesh.Vertices, Vertex{Position: position, Normal: safeNormalize(normal)})
	return int32(len(mesh.Vertices) - 1), nil
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	length := v.Len()
	if length < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Mul(1 / length)
}
