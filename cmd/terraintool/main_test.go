package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/smoothterrain/engine/meshio"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

const smallScene = `
log:
  level: error
scene:
  - kind: sphere
    material: rock
    center: [10, 10, 10]
    radius: 5
`

func TestRunWritesSnapshotAndGLB(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(configPath, []byte(smallScene), 0o644); err != nil {
		t.Fatal(err)
	}
	snapshot := filepath.Join(dir, "out.snap")
	glb := filepath.Join(dir, "out.glb")

	if err := run(configPath, "", snapshot, glb, false); err != nil {
		t.Fatalf("run: %v", err)
	}

	volume, err := voxel.LoadVolumeFromFile(snapshot)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if !volume.IsSolid(voxel.Int3{X: 10, Y: 10, Z: 10}) {
		t.Fatalf("sphere center is not solid after reload")
	}

	file, err := os.Open(glb)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	meshes, err := meshio.ImportGLB(file)
	if err != nil {
		t.Fatalf("import glb: %v", err)
	}
	if len(meshes) == 0 {
		t.Fatalf("no meshes exported")
	}

	// a second pass starting from the snapshot keeps the content
	resaved := filepath.Join(dir, "again.snap")
	if err := run(configPath, snapshot, resaved, "", true); err != nil {
		t.Fatalf("run from snapshot: %v", err)
	}
	again, err := voxel.LoadVolumeFromFile(resaved)
	if err != nil {
		t.Fatal(err)
	}
	if again.Stats().OccupiedCells != volume.Stats().OccupiedCells {
		t.Fatalf("occupied cells changed: %d != %d", again.Stats().OccupiedCells, volume.Stats().OccupiedCells)
	}
}

func TestRunRejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  - kind: pyramid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(configPath, "", "", "", false); err == nil {
		t.Fatalf("expected an error for an unknown shape")
	}
}
