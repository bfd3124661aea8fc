package isosurface

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

func TestExtractSingleSolidPoint(t *testing.T) {
	mesh, err := NewExtractor(16).Extract(singlePointField(5, 5, 5), [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mesh.VertexCount() != 6 || mesh.TriangleCount() != 8 {
		t.Fatalf("got %d vertices and %d triangles, want 6 and 8", mesh.VertexCount(), mesh.TriangleCount())
	}
	requireClosed(t, mesh)
	requireNoDuplicatePositions(t, mesh)
	requireFacingAway(t, mesh, mgl32.Vec3{5, 5, 5})
	for _, v := range mesh.Vertices {
		if v.Position.Sub(mgl32.Vec3{5, 5, 5}).Len() != 1 {
			t.Fatalf("vertex %v is not on a neighbouring lattice point", v.Position)
		}
		if v.Position.Sub(mgl32.Vec3{5, 5, 5}).Dot(v.Normal) <= 0 {
			t.Fatalf("normal %v at %v points inwards", v.Normal, v.Position)
		}
	}
}

func TestExtractUniformFieldsAreEmpty(t *testing.T) {
	for _, d := range []int8{-127, -1, 0, 1, 127} {
		mesh, err := NewExtractor(8).Extract(uniformField(d), [3]int32{}, 1)
		if err != nil {
			t.Fatalf("density %d: %v", d, err)
		}
		if !mesh.IsEmpty() || mesh.VertexCount() != 0 {
			t.Fatalf("density %d: got %d vertices and %d triangles", d, mesh.VertexCount(), mesh.TriangleCount())
		}
	}
}

func TestExtractSphere(t *testing.T) {
	mesh, err := NewExtractor(16).Extract(sphereField(8, 8, 8, 4.5), [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mesh.VertexCount() != 414 || mesh.TriangleCount() != 824 {
		t.Fatalf("got %d vertices and %d triangles, want 414 and 824", mesh.VertexCount(), mesh.TriangleCount())
	}
	requireClosed(t, mesh)
	requireNoDuplicatePositions(t, mesh)
	requireFacingAway(t, mesh, mgl32.Vec3{8, 8, 8})
	for _, v := range mesh.Vertices {
		r := v.Position.Sub(mgl32.Vec3{8, 8, 8}).Len()
		if r < 3.5 || r > 5.5 {
			t.Fatalf("vertex %v is %f away from the center", v.Position, r)
		}
		if l := v.Normal.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("normal %v is not unit length", v.Normal)
		}
	}
}

func TestExtractBox(t *testing.T) {
	mesh, err := NewExtractor(16).Extract(boxField([3]int32{3, 4, 2}, [3]int32{9, 8, 10}, -100), [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mesh.VertexCount() != 286 || mesh.TriangleCount() != 568 {
		t.Fatalf("got %d vertices and %d triangles, want 286 and 568", mesh.VertexCount(), mesh.TriangleCount())
	}
	requireClosed(t, mesh)
	requireNoDuplicatePositions(t, mesh)
	requireFacingAway(t, mesh, mgl32.Vec3{6, 6, 6})
}

func TestExtractNoiseHasNoHoles(t *testing.T) {
	values := []int8{-100, -3, 5, 60, -1, 2, 127, -127}
	for seed := uint32(0); seed < 4; seed++ {
		noise := noiseField(seed, values)
		// solid noise in the interior, air shell around it
		field := DensityFunc(func(x, y, z int32) int8 {
			if x < 1 || y < 1 || z < 1 || x > 14 || y > 14 || z > 14 {
				return 10
			}
			return noise(x, y, z)
		})
		mesh, err := NewExtractor(16).Extract(field, [3]int32{}, 1)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if mesh.IsEmpty() {
			t.Fatalf("seed %d: empty mesh", seed)
		}
		requireBalanced(t, mesh)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := NewExtractor(16)
	field := sphereField(7, 9, 8, 5)
	first, err := extractor.Extract(field, [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	second, err := extractor.Extract(field, [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	third, err := NewExtractor(16).Extract(field, [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, third) {
		t.Fatalf("repeated extraction produced different meshes")
	}
}

func TestExtractUsesOrigin(t *testing.T) {
	local, err := NewExtractor(16).Extract(singlePointField(5, 5, 5), [3]int32{}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	shifted, err := NewExtractor(16).Extract(singlePointField(-59, 69, 5), [3]int32{-64, 64, 0}, 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !reflect.DeepEqual(local, shifted) {
		t.Fatalf("extraction depends on the absolute position of the block")
	}
}

func TestExtractWithLevelOfDetail(t *testing.T) {
	mesh, err := NewExtractor(16).Extract(sphereField(8, 8, 8, 5.5), [3]int32{}, 2)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatalf("empty mesh at lod 2")
	}
	requireBalanced(t, mesh)
	min, max := mesh.Bounds()
	for axis := 0; axis < 3; axis++ {
		if min[axis] < 0 || max[axis] > 16 {
			t.Fatalf("bounds %v %v leave the block", min, max)
		}
	}
}

func TestExtractPanicsOnInvalidLod(t *testing.T) {
	for _, lod := range []int32{0, -1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("lod %d did not panic", lod)
				}
			}()
			_, _ = NewExtractor(16).Extract(uniformField(0), [3]int32{}, lod)
		}()
	}
}

func TestExtractIndexOverflow(t *testing.T) {
	checker := DensityFunc(func(x, y, z int32) int8 {
		if (x+y+z)&1 == 0 {
			return -1
		}
		return 1
	})
	_, err := NewExtractor(64).Extract(checker, [3]int32{}, 1)
	if !errors.Is(err, ErrIndexOverflow) {
		t.Fatalf("got %v, want ErrIndexOverflow", err)
	}
}

// execute with: go test -bench=. -test.benchmem
func BenchmarkExtractSphere(b *testing.B) {
	extractor := NewExtractor(64)
	field := sphereField(32, 32, 32, 24)
	for i := 0; i < b.N; i++ {
		_, _ = extractor.Extract(field, [3]int32{}, 1)
	}
}
