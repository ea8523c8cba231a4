package renderer

import (
	"fmt"
	"unsafe"

	"gl-scene/core"
	"gl-scene/scene"
)

// VertexArray is the GPU copy of a Mesh: a vertex array object with its
// vertex and element buffers.
type VertexArray struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32

	dev Device
}

// NewVertexArray uploads mesh once. The mesh must be non-empty and pass
// Validate; the CPU data is not retained by the VertexArray.
func NewVertexArray(dev Device, mesh *scene.Mesh) (*VertexArray, error) {
	if mesh.IsEmpty() {
		return nil, fmt.Errorf("upload mesh %q: %w: no vertices or indices", mesh.Name, scene.ErrInvalidMesh)
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("upload mesh %q: %w", mesh.Name, err)
	}

	va := &VertexArray{
		VAO:        dev.CreateVertexArray(),
		VBO:        dev.CreateBuffer(),
		EBO:        dev.CreateBuffer(),
		IndexCount: int32(len(mesh.Indices)),
		dev:        dev,
	}

	dev.BufferStorage(va.VBO, len(mesh.Vertices)*int(core.VertexStride), unsafe.Pointer(&mesh.Vertices[0]))
	dev.BufferStorage(va.EBO, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]))

	dev.VertexArrayVertexBuffer(va.VAO, core.VertexBindingSlot, va.VBO, core.VertexStride)
	for _, attr := range core.VertexLayout() {
		dev.VertexArrayAttrib(va.VAO, core.VertexBindingSlot, attr)
	}
	dev.VertexArrayElementBuffer(va.VAO, va.EBO)

	dev.ObjectLabel(ObjectVertexArray, va.VAO, mesh.Name)
	dev.ObjectLabel(ObjectBuffer, va.VBO, mesh.Name+" vertices")
	dev.ObjectLabel(ObjectBuffer, va.EBO, mesh.Name+" indices")
	return va, nil
}

func (va *VertexArray) Bind() {
	va.dev.BindVertexArray(va.VAO)
}

// Draw issues an indexed draw of the whole element buffer. The vertex array
// must be bound.
func (va *VertexArray) Draw() {
	va.dev.DrawElements(va.IndexCount)
}

// Destroy releases the three GPU objects. Calling it again is a no-op.
func (va *VertexArray) Destroy() {
	if va.VAO != 0 {
		va.dev.DeleteVertexArray(va.VAO)
		va.VAO = 0
	}
	if va.VBO != 0 {
		va.dev.DeleteBuffer(va.VBO)
		va.VBO = 0
	}
	if va.EBO != 0 {
		va.dev.DeleteBuffer(va.EBO)
		va.EBO = 0
	}
	va.IndexCount = 0
}
