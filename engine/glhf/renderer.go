package glhf

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
	"github.com/pkg/errors"
)

var (
	//go:embed shader/terrain.vert
	terrainVertexShaderSource string

	//go:embed shader/terrain.frag
	terrainFragmentShaderSource string
)

const (
	uniformProjection = iota
	uniformCamera
	uniformPalette
	uniformLightDir
	uniformAmbient
)

// slope ramp from flat to vertical
var terrainPalette = []voxel.Material{voxel.Grass, voxel.Grass, voxel.Dirt, voxel.Rock, voxel.Stone}

// TerrainRenderer keeps one MeshBuffer per chunk and implements voxel.ChunkRenderer.
// Upload and release may be called from any goroutine; the GL work is handed to the
// main thread. Draw must run on the main thread.
type TerrainRenderer struct {
	shader  *Shader
	palette *Texture

	mutex   sync.Mutex
	buffers map[voxel.Int3]*MeshBuffer

	LightDirection mgl32.Vec3
	Ambient        float32
	Wireframe      bool
}

// NewTerrainRenderer compiles the terrain shader. Call it on the main thread.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	vertexFormat := AttrFormat{
		{Name: "position", Type: Vec3},
		{Name: "normal", Type: Vec3},
	}
	uniformFormat := AttrFormat{
		{Name: "projection", Type: Mat4},
		{Name: "camera", Type: Mat4},
		{Name: "palette", Type: Int},
		{Name: "lightDir", Type: Vec3},
		{Name: "ambient", Type: Float},
	}
	shader, err := NewShader(vertexFormat, uniformFormat, terrainVertexShaderSource, terrainFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "terrain renderer")
	}
	colors := make([][3]uint8, len(terrainPalette))
	for i, m := range terrainPalette {
		colors[i] = m.Color()
	}
	return &TerrainRenderer{
		shader:         shader,
		palette:        NewPaletteTexture(colors, true),
		buffers:        make(map[voxel.Int3]*MeshBuffer),
		LightDirection: mgl32.Vec3{-0.4, -1, -0.3},
		Ambient:        0.35,
	}, nil
}

func (r *TerrainRenderer) UploadChunkMesh(chunk voxel.Int3, mesh *isosurface.Mesh) error {
	var uploadErr error
	mainthread.Call(func() {
		buffer, err := NewMeshBuffer(r.shader, mesh)
		if err != nil {
			uploadErr = err
			return
		}
		r.mutex.Lock()
		previous := r.buffers[chunk]
		r.buffers[chunk] = buffer
		r.mutex.Unlock()
		if previous != nil {
			previous.Delete()
		}
	})
	if uploadErr != nil {
		return errors.Wrapf(uploadErr, "upload chunk %s", chunk)
	}
	util.LogGlDebug(fmt.Sprintf("[TerrainRenderer] uploaded chunk %s (%d triangles)", chunk, mesh.TriangleCount()))
	return nil
}

func (r *TerrainRenderer) ReleaseChunkMesh(chunk voxel.Int3) {
	r.mutex.Lock()
	buffer, ok := r.buffers[chunk]
	delete(r.buffers, chunk)
	r.mutex.Unlock()
	if !ok {
		return
	}
	mainthread.Call(buffer.Delete)
}

// ChunkCount is the number of chunks currently resident on the GPU.
func (r *TerrainRenderer) ChunkCount() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.buffers)
}

// Draw renders all resident chunks in coordinate order.
func (r *TerrainRenderer) Draw(view, projection mgl32.Mat4) {
	r.mutex.Lock()
	keys := make([]voxel.Int3, 0, len(r.buffers))
	for key := range r.buffers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	buffers := make([]*MeshBuffer, len(keys))
	for i, key := range keys {
		buffers[i] = r.buffers[key]
	}
	r.mutex.Unlock()

	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	r.shader.Begin()
	r.palette.Begin()
	r.shader.SetUniformAttr(uniformProjection, projection)
	r.shader.SetUniformAttr(uniformCamera, view)
	r.shader.SetUniformAttr(uniformPalette, int32(0))
	r.shader.SetUniformAttr(uniformLightDir, r.LightDirection)
	r.shader.SetUniformAttr(uniformAmbient, r.Ambient)
	for _, buffer := range buffers {
		buffer.Draw()
	}
	r.palette.End()
	r.shader.End()
}

// Release frees all chunk buffers. Call it on the main thread.
func (r *TerrainRenderer) Release() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for key, buffer := range r.buffers {
		buffer.Delete()
		delete(r.buffers, key)
	}
}
