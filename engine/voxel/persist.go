package voxel

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/zstd"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/pkg/errors"
)

// A snapshot is a zstd stream of NBT compounds: one header followed by one
// compound per chunk.
const snapshotVersion int32 = 1

var (
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
	ErrChunkSize       = errors.New("snapshot chunk size does not match")
)

type snapshotHeader struct {
	Version    int32 `nbt:"version"`
	ChunkSize  int32 `nbt:"chunk_size"`
	ChunkCount int32 `nbt:"chunk_count"`
}

type chunkRecord struct {
	X         int32  `nbt:"x"`
	Y         int32  `nbt:"y"`
	Z         int32  `nbt:"z"`
	Materials []byte `nbt:"materials"`
	Densities []byte `nbt:"densities"`
}

func (v *Volume) Save(w io.Writer) error {
	chunks := v.sortedChunks()
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return errors.Wrap(err, "zstd writer")
	}
	nbtEncoder := nbt.NewEncoder(encoder)

	header := snapshotHeader{Version: snapshotVersion, ChunkSize: CHUNK_SIZE, ChunkCount: int32(len(chunks))}
	if err := nbtEncoder.Encode(header, "volume"); err != nil {
		encoder.Close()
		return errors.Wrap(err, "encode header")
	}
	for _, c := range chunks {
		cells := c.Cells()
		record := chunkRecord{
			X:         c.position.X,
			Y:         c.position.Y,
			Z:         c.position.Z,
			Materials: make([]byte, len(cells)),
			Densities: make([]byte, len(cells)),
		}
		for i, cell := range cells {
			record.Materials[i] = byte(cell.Material)
			record.Densities[i] = byte(cell.Density)
		}
		if err := nbtEncoder.Encode(record, "chunk"); err != nil {
			encoder.Close()
			return errors.Wrapf(err, "encode chunk %s", c.position)
		}
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "zstd close")
	}
	util.LogIOInfo(fmt.Sprintf("[Volume] Saved %d chunks", len(chunks)))
	return nil
}

// LoadVolume reads a snapshot written by Save. All loaded chunks are dirty.
func LoadVolume(r io.Reader) (*Volume, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "zstd reader")
	}
	defer decoder.Close()
	// one buffered reader for all compounds so no decoder reads ahead of the next
	stream := bufio.NewReader(decoder)

	var header snapshotHeader
	if _, err := nbt.NewDecoder(stream).Decode(&header); err != nil {
		return nil, errors.Wrap(err, "decode header")
	}
	if header.Version != snapshotVersion {
		return nil, errors.Wrapf(ErrSnapshotVersion, "version %d", header.Version)
	}
	if header.ChunkSize != CHUNK_SIZE {
		return nil, errors.Wrapf(ErrChunkSize, "got %d, want %d", header.ChunkSize, CHUNK_SIZE)
	}

	v := NewVolume()
	for i := int32(0); i < header.ChunkCount; i++ {
		var record chunkRecord
		if _, err := nbt.NewDecoder(stream).Decode(&record); err != nil {
			return nil, errors.Wrapf(err, "decode chunk %d", i)
		}
		if err := v.loadChunk(record); err != nil {
			return nil, err
		}
	}
	util.LogIOInfo(fmt.Sprintf("[Volume] Loaded %d chunks", v.ChunkCount()))
	return v, nil
}

func (v *Volume) loadChunk(record chunkRecord) error {
	position := Int3{record.X, record.Y, record.Z}
	if int32(len(record.Materials)) != CHUNK_SIZE_CUBED || int32(len(record.Densities)) != CHUNK_SIZE_CUBED {
		return errors.Errorf("chunk %s has %d materials and %d densities", position, len(record.Materials), len(record.Densities))
	}
	c := newChunk(v, position)
	for i := range c.data {
		material := Material(record.Materials[i])
		if material >= materialCount {
			return errors.Errorf("chunk %s holds unknown material %d", position, material)
		}
		c.data[i] = NewCell(material, int8(record.Densities[i]))
		if material != Air {
			c.occupiedCells++
		}
	}
	if c.occupiedCells == 0 {
		return nil
	}
	if _, loaded := v.chunks.LoadOrStore(position, c); loaded {
		return errors.Errorf("chunk %s stored twice", position)
	}
	return nil
}

func (v *Volume) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	if err := v.Save(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close snapshot")
}

func LoadVolumeFromFile(filename string) (*Volume, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer file.Close()
	return LoadVolume(file)
}
