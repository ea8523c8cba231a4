package core

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the only vertex format the renderer uploads. The field order
// defines the byte offsets declared by VertexLayout; reordering fields moves
// every attribute and the shaders' input locations must follow.
type Vertex struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// VertexStride is the distance in bytes between consecutive vertices.
const VertexStride = int32(unsafe.Sizeof(Vertex{}))

// VertexBindingSlot is the vertex-buffer binding index every attribute reads from.
const VertexBindingSlot = 0

// VertexAttribute declares one float attribute of Vertex.
type VertexAttribute struct {
	Name       string
	Location   uint32
	Components int32
	Offset     uint32
}

// VertexLayout returns the attribute declarations for Vertex, in shader
// location order. Offsets come from the struct itself.
func VertexLayout() []VertexAttribute {
	var v Vertex
	return []VertexAttribute{
		{Name: "position", Location: 0, Components: 3, Offset: uint32(unsafe.Offsetof(v.Position))},
		{Name: "colour", Location: 1, Components: 3, Offset: uint32(unsafe.Offsetof(v.Colour))},
		{Name: "texture_coord", Location: 2, Components: 2, Offset: uint32(unsafe.Offsetof(v.TexCoord))},
		{Name: "normal", Location: 3, Components: 3, Offset: uint32(unsafe.Offsetof(v.Normal))},
	}
}
