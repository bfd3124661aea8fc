package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/config"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

func TestAddAndCarveSphere(t *testing.T) {
	v := voxel.NewVolume()
	center := mgl32.Vec3{10, 10, 10}
	AddSphere(v, center, 5, voxel.Rock)
	if c := v.GetCell(voxel.Int3{X: 10, Y: 10, Z: 10}); c.Material != voxel.Rock || c.Density >= 0 {
		t.Fatalf("center cell %v", c)
	}
	if c := v.GetCell(voxel.Int3{X: 10, Y: 16, Z: 10}); c.Density <= 0 {
		t.Fatalf("cell outside the ball %v", c)
	}
	if !v.GetCell(voxel.Int3{X: 10, Y: 20, Z: 10}).IsAir() {
		t.Fatalf("ball too large")
	}

	CarveSphere(v, center, 2)
	if !v.GetCell(voxel.Int3{X: 10, Y: 11, Z: 10}).IsAir() {
		t.Fatalf("carved cell still solid")
	}
	if v.GetCell(voxel.Int3{X: 10, Y: 14, Z: 10}).IsAir() {
		t.Fatalf("carve removed too much")
	}
	if err := v.RebuildDirty(nil); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if v.ChunkAt(voxel.Int3{}).Mesh().IsEmpty() {
		t.Fatalf("no surface")
	}
}

func TestAddSphereKeepsDeeperSolid(t *testing.T) {
	v := voxel.NewVolume()
	v.SetCell(voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.NewCell(voxel.Stone, -127))
	AddSphere(v, mgl32.Vec3{0, 0, 0}, 1, voxel.Snow)
	if c := v.GetCell(voxel.Int3{}); c != voxel.NewCell(voxel.Stone, -127) {
		t.Fatalf("deeper solid overwritten: %v", c)
	}
}

func TestGroundLayers(t *testing.T) {
	v := voxel.NewVolume()
	Ground(v, voxel.NewRegion(voxel.Int3{X: 0, Y: -20, Z: 0}, voxel.Int3{X: 3, Y: 20, Z: 3}), 0, 0, 0, voxel.Grass)
	cases := map[int32]voxel.Material{-15: voxel.Stone, -5: voxel.Dirt, -1: voxel.Grass, 0: voxel.Grass, 1: voxel.Grass, 5: voxel.Air}
	for y, want := range cases {
		if got := v.GetCell(voxel.Int3{X: 1, Y: y, Z: 1}).Material; got != want {
			t.Fatalf("y=%d: got %v, want %v", y, got, want)
		}
	}
}

func TestApplyScene(t *testing.T) {
	v := voxel.NewVolume()
	shapes := []config.Shape{
		{Kind: "box", Material: "stone", Density: -100, Min: [3]int32{0, 0, 0}, Max: [3]int32{7, 7, 7}},
		{Kind: "carve", Center: [3]float32{0, 0, 0}, Radius: 2},
	}
	if err := ApplyScene(v, shapes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !v.GetCell(voxel.Int3{}).IsAir() || v.GetCell(voxel.Int3{X: 7, Y: 7, Z: 7}).IsAir() {
		t.Fatalf("scene not applied")
	}
	if err := ApplyScene(v, []config.Shape{{Kind: "box", Material: "plasma"}}); err == nil {
		t.Fatalf("expected an error for an unknown material")
	}
}
