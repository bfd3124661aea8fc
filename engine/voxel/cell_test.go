package voxel

import "testing"

func TestAirCellsCarryNoDensity(t *testing.T) {
	if c := NewCell(Air, -50); c != (Cell{}) {
		t.Fatalf("got %v", c)
	}
	if c := NewCell(Stone, -50); c.Density != -50 || c.IsAir() {
		t.Fatalf("got %v", c)
	}
}

func TestParseMaterial(t *testing.T) {
	for m := Air; m < materialCount; m++ {
		parsed, err := ParseMaterial(m.String())
		if err != nil || parsed != m {
			t.Fatalf("ParseMaterial(%q) = %v, %v", m.String(), parsed, err)
		}
	}
	if _, err := ParseMaterial("cheese"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestMaterialColorsAreDistinct(t *testing.T) {
	seen := map[[3]uint8]Material{}
	for m := Grass; m < materialCount; m++ {
		if other, ok := seen[m.Color()]; ok {
			t.Fatalf("%v and %v share color %v", m, other, m.Color())
		}
		seen[m.Color()] = m
	}
	if Material(200).Color() != [3]uint8{255, 0, 255} {
		t.Fatalf("unknown material should be magenta")
	}
}
