package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/memmaker/smoothterrain/engine/isosurface"
	"github.com/pkg/errors"
)

// MeshBuffer holds one indexed triangle mesh on the GPU.
// The vertex data is interleaved in the order of the shader's vertex format,
// which must consist of Vec3 attributes only (position, normal).
type MeshBuffer struct {
	vao, vbo, ibo binder
	format        AttrFormat
	stride        int
	shader        *Shader
	vertexCount   int
	indexCount    int
	primitiveType uint32
}

// NewMeshBuffer uploads the mesh. It must be called on the thread owning the GL context.
func NewMeshBuffer(shader *Shader, mesh *isosurface.Mesh) (*MeshBuffer, error) {
	if mesh == nil || mesh.IsEmpty() {
		return nil, errors.New("mesh buffer: mesh is empty")
	}
	format := shader.VertexFormat()
	if len(format) != 2 || format[0].Type != Vec3 || format[1].Type != Vec3 {
		return nil, errors.New("mesh buffer: shader vertex format must be (Vec3 position, Vec3 normal)")
	}
	mb := &MeshBuffer{
		primitiveType: gl.TRIANGLES,
		vao: binder{
			restoreLoc: gl.VERTEX_ARRAY_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindVertexArray(obj)
			},
		},
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		ibo: binder{
			restoreLoc: gl.ELEMENT_ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, obj)
			},
		},
		format:      format,
		stride:      format.Size(),
		shader:      shader,
		vertexCount: mesh.VertexCount(),
		indexCount:  len(mesh.Indices),
	}

	gl.GenVertexArrays(1, &mb.vao.obj)
	mb.vao.bind()

	gl.GenBuffers(1, &mb.vbo.obj)
	mb.vbo.bind()
	data := interleave(mesh)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*SizeOfFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	mb.setAttributes()

	// the element buffer binding is VAO state, so it stays bound until the VAO is restored
	gl.GenBuffers(1, &mb.ibo.obj)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ibo.obj)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	mb.vao.restore()
	mb.vbo.restore()

	if glError := gl.GetError(); glError != gl.NO_ERROR {
		mb.Delete()
		return nil, errors.Errorf("mesh buffer: upload failed with GL error 0x%x", glError)
	}

	runtime.SetFinalizer(mb, (*MeshBuffer).finalize)
	return mb, nil
}

func interleave(mesh *isosurface.Mesh) []float32 {
	data := make([]float32, 0, len(mesh.Vertices)*6)
	for _, v := range mesh.Vertices {
		data = append(data, v.Position[0], v.Position[1], v.Position[2])
		data = append(data, v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return data
}

func (mb *MeshBuffer) setAttributes() {
	offset := 0
	for _, attr := range mb.format {
		loc := gl.GetAttribLocation(mb.shader.program.obj, gl.Str(attr.Name+"\x00"))
		if loc >= 0 {
			gl.VertexAttribPointerWithOffset(uint32(loc), 3, gl.FLOAT, false, int32(mb.stride), uintptr(offset))
			gl.EnableVertexAttribArray(uint32(loc))
		}
		offset += attr.Type.Size()
	}
}

// VertexCount returns the number of vertices stored in the buffer.
func (mb *MeshBuffer) VertexCount() int {
	return mb.vertexCount
}

// TriangleCount returns the number of triangles drawn by Draw.
func (mb *MeshBuffer) TriangleCount() int {
	return mb.indexCount / 3
}

// Draw issues the draw call. The shader must be bound.
func (mb *MeshBuffer) Draw() {
	mb.vao.bind()
	gl.DrawElements(mb.primitiveType, int32(mb.indexCount), gl.UNSIGNED_SHORT, gl.Ptr(nil))
	mb.vao.restore()
}

// SetPrimitiveType switches between gl.TRIANGLES and e.g. gl.LINES for debugging.
func (mb *MeshBuffer) SetPrimitiveType(glPrimitiveType uint32) {
	mb.primitiveType = glPrimitiveType
}

// Delete frees the GPU objects immediately. It must be called on the GL thread.
func (mb *MeshBuffer) Delete() {
	runtime.SetFinalizer(mb, nil)
	mb.deleteObjects()
}

func (mb *MeshBuffer) finalize() {
	mainthread.CallNonBlock(mb.deleteObjects)
}

func (mb *MeshBuffer) deleteObjects() {
	gl.DeleteVertexArrays(1, &mb.vao.obj)
	gl.DeleteBuffers(1, &mb.vbo.obj)
	gl.DeleteBuffers(1, &mb.ibo.obj)
	mb.vao.obj, mb.vbo.obj, mb.ibo.obj = 0, 0, 0
}
