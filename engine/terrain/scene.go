package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/config"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
	"github.com/pkg/errors"
)

func parseMaterial(name string, fallback voxel.Material) (voxel.Material, error) {
	if name == "" {
		return fallback, nil
	}
	return voxel.ParseMaterial(name)
}

// ApplyScene runs the scene shapes in order.
func ApplyScene(v *voxel.Volume, shapes []config.Shape) error {
	for i, s := range shapes {
		material, err := parseMaterial(s.Material, voxel.Stone)
		if err != nil {
			return errors.Wrapf(err, "scene[%d]", i)
		}
		min := voxel.Int3{X: s.Min[0], Y: s.Min[1], Z: s.Min[2]}
		max := voxel.Int3{X: s.Max[0], Y: s.Max[1], Z: s.Max[2]}
		center := mgl32.Vec3(s.Center)
		switch s.Kind {
		case "box":
			v.FillRegion(voxel.NewRegion(min, max), material, s.Density)
		case "sphere":
			AddSphere(v, center, s.Radius, material)
		case "carve":
			CarveSphere(v, center, s.Radius)
		case "ground":
			Ground(v, voxel.NewRegion(min, max), s.Height, s.Amplitude, s.Frequency, material)
		default:
			return errors.Errorf("scene[%d]: unknown kind %q", i, s.Kind)
		}
		util.LogVoxelDebug(fmt.Sprintf("[Scene] Applied %s (%d chunks)", s.Kind, v.ChunkCount()))
	}
	return nil
}
