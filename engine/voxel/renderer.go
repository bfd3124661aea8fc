package voxel

import "github.com/memmaker/smoothterrain/engine/isosurface"

type FaceType int32

const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

func (f FaceType) Offset() Int3 {
	switch f {
	case XP:
		return Int3{1, 0, 0}
	case XN:
		return Int3{-1, 0, 0}
	case YP:
		return Int3{0, 1, 0}
	case YN:
		return Int3{0, -1, 0}
	case ZP:
		return Int3{0, 0, 1}
	case ZN:
		return Int3{0, 0, -1}
	}
	return Int3{}
}

// ChunkRenderer receives chunk geometry in world space. Uploading replaces
// whatever was stored for the chunk before; releasing an unknown chunk is a
// no-op. Implementations guard their own state.
type ChunkRenderer interface {
	UploadChunkMesh(chunk Int3, mesh *isosurface.Mesh) error
	ReleaseChunkMesh(chunk Int3)
}

// MultiRenderer forwards chunk geometry to several renderers, e.g. the GPU and
// a collision set. An upload stops at the first failing renderer.
type MultiRenderer []ChunkRenderer

func (m MultiRenderer) UploadChunkMesh(chunk Int3, mesh *isosurface.Mesh) error {
	for _, r := range m {
		if err := r.UploadChunkMesh(chunk, mesh); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiRenderer) ReleaseChunkMesh(chunk Int3) {
	for _, r := range m {
		r.ReleaseChunkMesh(chunk)
	}
}
