package voxel

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Material uint8

const (
	Air Material = iota
	Grass
	Dirt
	Stone
	Sand
	Rock
	Snow
	Water
	materialCount
)

var materialNames = [materialCount]string{"air", "grass", "dirt", "stone", "sand", "rock", "snow", "water"}

func (m Material) String() string {
	if m < materialCount {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return Air, errors.Errorf("unknown material %q", name)
}

// Cell is the content of one lattice point. Negative density is inside the
// surface. An air cell always carries density 0.
type Cell struct {
	Material Material
	Density  int8
}

func NewCell(material Material, density int8) Cell {
	if material == Air {
		return Cell{}
	}
	return Cell{Material: material, Density: density}
}

func (c Cell) IsAir() bool {
	return c.Material == Air
}

func (c Cell) String() string {
	return fmt.Sprintf("%s(%d)", c.Material, c.Density)
}

var materialColors = [materialCount][3]uint8{
	{0, 0, 0},
	{86, 140, 58},
	{121, 85, 58},
	{128, 128, 128},
	{219, 203, 148},
	{97, 92, 88},
	{240, 244, 250},
	{52, 98, 180},
}

// Color is the display color used by the viewer palette.
func (m Material) Color() [3]uint8 {
	if m < materialCount {
		return materialColors[m]
	}
	return [3]uint8{255, 0, 255}
}
