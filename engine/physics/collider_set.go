package physics

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

// ColliderSet keeps one MeshCollider per chunk. It implements
// voxel.ChunkRenderer, so a volume rebuild keeps it in sync with the
// rendered surface.
type ColliderSet struct {
	mutex     sync.RWMutex
	colliders map[voxel.Int3]*MeshCollider
}

func NewColliderSet() *ColliderSet {
	return &ColliderSet{colliders: make(map[voxel.Int3]*MeshCollider)}
}

func (s *ColliderSet) UploadChunkMesh(chunk voxel.Int3, mesh *isosurface.Mesh) error {
	collider := NewMeshCollider(fmt.Sprintf("chunk %s", chunk), mesh)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.colliders[chunk] = collider
	return nil
}

func (s *ColliderSet) ReleaseChunkMesh(chunk voxel.Int3) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.colliders, chunk)
}

func (s *ColliderSet) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.colliders)
}

func (s *ColliderSet) Collider(chunk voxel.Int3) *MeshCollider {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.colliders[chunk]
}

// IntersectsRay tests the segment against every collider and returns the
// nearest hit.
func (s *ColliderSet) IntersectsRay(rayStart, rayEnd mgl32.Vec3) (bool, mgl32.Vec3) {
	s.mutex.RLock()
	keys := make([]voxel.Int3, 0, len(s.colliders))
	for k := range s.colliders {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	colliders := make([]*MeshCollider, len(keys))
	for i, k := range keys {
		colliders[i] = s.colliders[k]
	}
	s.mutex.RUnlock()

	hit := false
	var nearest mgl32.Vec3
	for _, c := range colliders {
		if ok, at := c.IntersectsRay(rayStart, rayEnd); ok {
			if !hit || at.Sub(rayStart).Len() < nearest.Sub(rayStart).Len() {
				nearest = at
			}
			hit = true
		}
	}
	return hit, nearest
}
