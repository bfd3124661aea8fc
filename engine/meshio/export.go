package meshio

import (
	"fmt"
	"io"
	"os"

	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

type NamedMesh struct {
	Name string
	Mesh *isosurface.Mesh
}

// BuildDocument creates a glTF document with one node per non-empty mesh.
func BuildDocument(meshes []NamedMesh) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "smoothterrain"
	for _, named := range meshes {
		if named.Mesh.IsEmpty() {
			continue
		}
		positions := make([][3]float32, len(named.Mesh.Vertices))
		normals := make([][3]float32, len(named.Mesh.Vertices))
		for i, v := range named.Mesh.Vertices {
			positions[i] = v.Position
			normals[i] = v.Normal
		}
		positionAccessor := modeler.WritePosition(doc, positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		indicesAccessor := modeler.WriteIndices(doc, named.Mesh.Indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: named.Name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{
					gltf.POSITION: positionAccessor,
					gltf.NORMAL:   normalAccessor,
				},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: named.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// ExportGLB writes the meshes as a binary glTF.
func ExportGLB(w io.Writer, meshes []NamedMesh) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	if err := encoder.Encode(BuildDocument(meshes)); err != nil {
		return errors.Wrap(err, "encode glb")
	}
	return nil
}

func ExportGLBFile(filename string, meshes []NamedMesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create glb")
	}
	if err := ExportGLB(file, meshes); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close glb")
}

// VolumeMeshes rebuilds dirty chunks and collects the geometry of every
// chunk, named after its chunk coordinate.
func VolumeMeshes(volume *voxel.Volume) ([]NamedMesh, error) {
	if err := volume.RebuildDirty(nil); err != nil {
		return nil, err
	}
	var meshes []NamedMesh
	volume.ForEachChunk(func(c *voxel.Chunk) {
		if mesh := c.Mesh(); !mesh.IsEmpty() {
			meshes = append(meshes, NamedMesh{Name: fmt.Sprintf("chunk_%d_%d_%d", c.Position().X, c.Position().Y, c.Position().Z), Mesh: mesh})
		}
	})
	return meshes, nil
}

func ExportVolumeGLB(w io.Writer, volume *voxel.Volume) error {
	meshes, err := VolumeMeshes(volume)
	if err != nil {
		return err
	}
	util.LogIOInfo(fmt.Sprintf("[GLB] Exporting %d chunk meshes", len(meshes)))
	return ExportGLB(w, meshes)
}
