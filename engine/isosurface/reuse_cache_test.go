package isosurface

import "testing"

func TestReuseCacheStepsBack(t *testing.T) {
	cache := NewReuseCache(4)
	cache.BeginLayer(0)
	cache.SetReusableIndex(1, 2, 0, 3, 42)
	cache.BeginLayer(1)
	cache.SetReusableIndex(2, 2, 1, 1, 7)

	if got := cache.GetReusedIndex(2, 3, 1, reuseNegY|reuseNegZ|reuseNegX)[3]; got != 42 {
		t.Fatalf("diagonal step back returned %d, want 42", got)
	}
	if got := cache.GetReusedIndex(3, 2, 1, reuseNegX)[1]; got != 7 {
		t.Fatalf("step back in x returned %d, want 7", got)
	}
	if got := cache.GetReusedIndex(2, 2, 1, 0)[1]; got != 7 {
		t.Fatalf("own record returned %d, want 7", got)
	}
	if got := cache.GetReusedIndex(2, 2, 1, 0)[0]; got != noVertex {
		t.Fatalf("unset slot returned %d", got)
	}
}

func TestReuseCacheLayerRolls(t *testing.T) {
	cache := NewReuseCache(4)
	cache.BeginLayer(0)
	cache.SetReusableIndex(0, 0, 0, 0, 5)
	cache.BeginLayer(1)
	if got := cache.GetReusedIndex(0, 0, 1, reuseNegZ)[0]; got != 5 {
		t.Fatalf("previous layer lost: %d", got)
	}
	cache.BeginLayer(2)
	if got := cache.GetReusedIndex(0, 0, 2, 0)[0]; got != noVertex {
		t.Fatalf("layer 2 was not reset: %d", got)
	}
}

func TestReuseCachePanicsOutsideChunk(t *testing.T) {
	cases := []struct {
		x, y, z   int32
		direction uint8
	}{
		{0, 1, 1, reuseNegX},
		{1, 0, 1, reuseNegY},
		{1, 1, 0, reuseNegZ},
		{0, 0, 0, reuseNegX | reuseNegY | reuseNegZ},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("step %#x from (%d, %d, %d) did not panic", c.direction, c.x, c.y, c.z)
				}
			}()
			NewReuseCache(4).GetReusedIndex(c.x, c.y, c.z, c.direction)
		}()
	}
}
