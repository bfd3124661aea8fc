package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/smoothterrain/engine/util"
)

const sampleConfig = `
log:
  level: debug
  categories: [voxel, mesh]
volume:
  workers: 2
scene:
  - kind: box
    material: stone
    density: -100
    min: [0, 0, 0]
    max: [10, 4, 10]
  - kind: carve
    center: [5, 4, 5]
    radius: 3
output:
  snapshot: out/terrain.snapshot
  glb: out/terrain.glb
viewer:
  width: 800
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Log.Level != "debug" || len(c.Log.Categories) != 2 || c.Volume.Workers != 2 {
		t.Fatalf("got %+v", c)
	}
	if len(c.Scene) != 2 || c.Scene[0].Density != -100 || c.Scene[0].Max != [3]int32{10, 4, 10} || c.Scene[1].Radius != 3 {
		t.Fatalf("scene %+v", c.Scene)
	}
	if c.Output.GLB != "out/terrain.glb" {
		t.Fatalf("output %+v", c.Output)
	}
	// keys missing from the file keep their defaults
	if c.Viewer.Width != 800 || c.Viewer.Height != 720 || c.Viewer.BrushMaterial != "dirt" {
		t.Fatalf("viewer %+v", c.Viewer)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"unknown kind":  "scene:\n  - kind: pyramid\n",
		"inverted box":  "scene:\n  - kind: box\n    density: -1\n    min: [5, 0, 0]\n    max: [0, 0, 0]\n",
		"flat sphere":   "scene:\n  - kind: sphere\n    radius: 0\n",
		"positive box":  "scene:\n  - kind: box\n    material: dirt\n    density: 5\n",
		"workers":       "volume:\n  workers: -1\n",
		"invalid yaml":  "scene: [",
		"density range": "scene:\n  - kind: box\n    density: -300\n",
	}
	for name, raw := range cases {
		c := Default()
		if err := Parse([]byte(raw), &c); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestLogConfigApply(t *testing.T) {
	var lines []string
	util.SetLogSink(func(s string) { lines = append(lines, s) })
	defer util.SetLogSink(nil)
	defer util.SetLogLevel(util.LogLevelInfo)
	defer util.SetLogCategories(util.LogAll)

	if err := (LogConfig{Level: "error", Categories: []string{"io"}}).Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	util.LogIOInfo("quiet")
	util.LogVoxelError("other category")
	util.LogIOError("loud")
	if len(lines) != 1 || lines[0] != "loud" {
		t.Fatalf("got %v", lines)
	}

	if err := (LogConfig{Level: "shouting"}).Apply(); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}
