package meshio

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ImportGLB reads back the triangle meshes of a glTF document, one entry
// per mesh primitive.
func ImportGLB(r io.Reader) ([]NamedMesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decode glb")
	}
	var result []NamedMesh
	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			imported, err := readPrimitive(doc, primitive)
			if err != nil {
				return nil, errors.Wrapf(err, "mesh %s", mesh.Name)
			}
			result = append(result, NamedMesh{Name: mesh.Name, Mesh: imported})
		}
	}
	return result, nil
}

func readPrimitive(doc *gltf.Document, primitive *gltf.Primitive) (*isosurface.Mesh, error) {
	positionIndex, ok := primitive.Attributes[gltf.POSITION]
	if !ok || primitive.Indices == nil {
		return nil, errors.New("primitive without positions or indices")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[positionIndex], nil)
	if err != nil {
		return nil, errors.Wrap(err, "positions")
	}
	var normals [][3]float32
	if normalIndex, ok := primitive.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normalIndex], nil)
		if err != nil {
			return nil, errors.Wrap(err, "normals")
		}
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
	if err != nil {
		return nil, errors.Wrap(err, "indices")
	}
	if len(positions) > 0xFFFF {
		return nil, errors.Wrapf(isosurface.ErrIndexOverflow, "%d vertices", len(positions))
	}

	mesh := &isosurface.Mesh{
		Vertices: make([]isosurface.Vertex, len(positions)),
		Indices:  make([]uint16, len(indices)),
	}
	for i, p := range positions {
		mesh.Vertices[i].Position = mgl32.Vec3(p)
		if i < len(normals) {
			mesh.Vertices[i].Normal = mgl32.Vec3(normals[i])
		}
	}
	for i, index := range indices {
		mesh.Indices[i] = uint16(index)
	}
	return mesh, nil
}
