package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

// density units per cell of signed distance
const densityScale = 32

func densityFromDistance(distance float64) int8 {
	d := math.Round(distance * densityScale)
	if d < -127 {
		return -127
	}
	if d > 127 {
		return 127
	}
	return int8(d)
}

func sphereRegion(center mgl32.Vec3, radius float32, margin int32) voxel.Region {
	r := int32(math.Ceil(float64(radius))) + margin
	c := voxel.Int3{
		X: int32(math.Floor(float64(center.X()))),
		Y: int32(math.Floor(float64(center.Y()))),
		Z: int32(math.Floor(float64(center.Z()))),
	}
	return voxel.NewRegion(c.Sub(voxel.Int3{X: r, Y: r, Z: r}), c.Add(voxel.Int3{X: r, Y: r, Z: r}))
}

// AddSphere merges a smooth ball, center and radius in cell units, into
// the volume. Cells just outside the ball get a positive density so the
// surface interpolates instead of snapping to cell centers.
func AddSphere(v *voxel.Volume, center mgl32.Vec3, radius float32, material voxel.Material) {
	if material == voxel.Air {
		CarveSphere(v, center, radius)
		return
	}
	v.FillFunc(sphereRegion(center, radius, 2), func(c voxel.Int3) (voxel.Cell, bool) {
		distance := float64(c.ToVec3().Sub(center).Len()) - float64(radius)
		density := densityFromDistance(distance)
		existing := v.GetCell(c)
		if density < 0 {
			if !existing.IsAir() && existing.Density <= density {
				return existing, false
			}
			return voxel.NewCell(material, density), true
		}
		if existing.IsAir() && density < densityScale*2 {
			if density == 0 {
				density = 1
			}
			return voxel.NewCell(material, density), true
		}
		return existing, false
	})
}

// CarveSphere turns every cell within radius into air.
func CarveSphere(v *voxel.Volume, center mgl32.Vec3, radius float32) {
	v.FillFunc(sphereRegion(center, radius, 0), func(c voxel.Int3) (voxel.Cell, bool) {
		if c.ToVec3().Sub(center).Len() > radius {
			return voxel.Cell{}, false
		}
		return voxel.Cell{}, true
	})
}

// Ground fills a rolling height field. Cells below the surface are solid,
// the top layers get the given material, deeper cells turn to dirt and
// then stone.
func Ground(v *voxel.Volume, region voxel.Region, height, amplitude, frequency float32, material voxel.Material) {
	v.FillFunc(region, func(c voxel.Int3) (voxel.Cell, bool) {
		surface := height + amplitude*float32(math.Sin(float64(float32(c.X)*frequency))*math.Cos(float64(float32(c.Z)*frequency*0.7)))
		depth := surface - float32(c.Y)
		density := densityFromDistance(float64(-depth))
		if density >= densityScale*2 {
			return voxel.Cell{}, false
		}
		if density == 0 {
			density = 1
		}
		switch {
		case depth > 8:
			return voxel.NewCell(voxel.Stone, density), true
		case depth > 2:
			return voxel.NewCell(voxel.Dirt, density), true
		}
		return voxel.NewCell(material, density), true
	})
}
