package scene

import (
	"errors"
	"fmt"

	"gl-scene/core"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh holds CPU-side vertex/index data plus the textures it samples.
// GPU upload is done once by renderer.NewVertexArray; the CPU copy is kept.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
	Textures []*Texture
}

func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]core.Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

// Validate checks the triangle-list contract: every index addresses an
// existing vertex and the index count is a multiple of three.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %s has %d indices, not a multiple of 3", ErrInvalidMesh, m.Name, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: %s index %d = %d out of range (%d vertices)", ErrInvalidMesh, m.Name, i, idx, n)
		}
	}
	return nil
}

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) == 0
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
