package voxel

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

func TestSnapshotRoundTrip(t *testing.T) {
	v := NewVolume()
	v.FillRegion(NewRegion(Int3{-10, -3, 60}, Int3{5, 2, 70}), Sand, -20)
	v.SetCell(Int3{500, 500, 500}, NewCell(Snow, 17))
	v.SetCell(Int3{-1, -1, -1}, NewCell(Water, -128))

	var buffer bytes.Buffer
	if err := v.Save(&buffer); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadVolume(&buffer)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ChunkCount() != v.ChunkCount() {
		t.Fatalf("got %d chunks, want %d", loaded.ChunkCount(), v.ChunkCount())
	}
	v.ForEachChunk(func(c *Chunk) {
		other := loaded.ChunkAt(c.Position())
		if other == nil {
			t.Fatalf("chunk %s missing", c.Position())
		}
		if other.OccupiedCells() != c.OccupiedCells() || !other.IsDirty() {
			t.Fatalf("chunk %s not restored", c.Position())
		}
		want, got := c.Cells(), other.Cells()
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("chunk %s cell %d: got %v, want %v", c.Position(), i, got[i], want[i])
			}
		}
	})
}

func TestSnapshotFile(t *testing.T) {
	v := NewVolume()
	v.SetCell(Int3{3, 2, 1}, NewCell(Grass, -4))
	filename := filepath.Join(t.TempDir(), "terrain.snapshot")
	if err := v.SaveToFile(filename); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadVolumeFromFile(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.GetCell(Int3{3, 2, 1}) != NewCell(Grass, -4) {
		t.Fatalf("cell lost")
	}
}

func TestSnapshotRejectsForeignVersion(t *testing.T) {
	var buffer bytes.Buffer
	encoder, err := zstd.NewWriter(&buffer)
	if err != nil {
		t.Fatalf("zstd: %v", err)
	}
	header := snapshotHeader{Version: snapshotVersion + 1, ChunkSize: CHUNK_SIZE}
	if err := nbt.NewEncoder(encoder).Encode(header, "volume"); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := LoadVolume(&buffer); !errors.Is(err, ErrSnapshotVersion) {
		t.Fatalf("got %v, want ErrSnapshotVersion", err)
	}
}
