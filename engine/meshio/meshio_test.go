package meshio

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

func TestExportVolumeGLB(t *testing.T) {
	v := voxel.NewVolume()
	v.SetCell(voxel.Int3{X: 3, Y: 3, Z: 3}, voxel.NewCell(voxel.Stone, -100))
	v.SetCell(voxel.Int3{X: -30, Y: 3, Z: 3}, voxel.NewCell(voxel.Stone, -100))

	var buffer bytes.Buffer
	if err := ExportVolumeGLB(&buffer, v); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(buffer.Bytes(), []byte("glTF")) {
		t.Fatalf("output is not a binary glTF")
	}

	imported, err := ImportGLB(&buffer)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("got %d meshes, want 2", len(imported))
	}
	if imported[0].Name != "chunk_-1_0_0" || imported[1].Name != "chunk_0_0_0" {
		t.Fatalf("unexpected names %q %q", imported[0].Name, imported[1].Name)
	}
	want := v.ChunkAt(voxel.Int3{}).Mesh()
	if !reflect.DeepEqual(imported[1].Mesh, want) {
		t.Fatalf("mesh changed on the way through glTF")
	}
}

func TestEmptyMeshesAreSkipped(t *testing.T) {
	mesh := &isosurface.Mesh{
		Vertices: []isosurface.Vertex{
			{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
			{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
			{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		},
		Indices: []uint16{0, 1, 2},
	}
	doc := BuildDocument([]NamedMesh{{Name: "empty", Mesh: &isosurface.Mesh{}}, {Name: "tri", Mesh: mesh}, {Name: "nil"}})
	if len(doc.Meshes) != 1 || len(doc.Nodes) != 1 || len(doc.Scenes[0].Nodes) != 1 {
		t.Fatalf("got %d meshes and %d nodes", len(doc.Meshes), len(doc.Nodes))
	}
	if doc.Meshes[0].Name != "tri" {
		t.Fatalf("got %q", doc.Meshes[0].Name)
	}
}
