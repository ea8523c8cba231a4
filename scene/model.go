package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

var ErrModelLoad = errors.New("model load failed")

// ImportedScene is what an asset importer hands over: a node tree whose
// nodes reference meshes by index, plus the materials those meshes use.
type ImportedScene struct {
	Root       *ImportedNode
	Meshes     []ImportedMesh
	Materials  []ImportedMaterial
	Incomplete bool
}

type ImportedNode struct {
	Name        string
	MeshIndices []int
	Children    []*ImportedNode
}

// ImportedMesh carries per-vertex arrays of equal length. Normals and UVs
// are nil when the source has no such channel. Faces are triangles.
type ImportedMesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Faces     [][3]uint32
	Material  int // -1 when the mesh has no material
}

type ImportedMaterial struct {
	Name     string
	Diffuse  []TextureRef
	Specular []TextureRef
}

// TextureRef names a texture by its cache key and knows how to decode it.
type TextureRef struct {
	Key  string
	Open func() (*Image, error)
}

// Model is the flattened list of meshes built from an imported scene.
type Model struct {
	Path   string
	Meshes []*Mesh
}

// ModelStats summarises a model for the load log.
type ModelStats struct {
	Meshes, Vertices, Indices, Textures int
}

func (m *Model) Stats() ModelStats {
	s := ModelStats{Meshes: len(m.Meshes)}
	for _, mesh := range m.Meshes {
		s.Vertices += len(mesh.Vertices)
		s.Indices += len(mesh.Indices)
		s.Textures += len(mesh.Textures)
	}
	return s
}

// BuildModel converts an imported scene into meshes. Nodes are visited depth
// first: a node's own meshes come before its children's. Material textures
// go through cache, diffuse maps before specular ones. A texture that fails
// to load is skipped with a warning.
func BuildModel(imported *ImportedScene, cache *TextureCache) (*Model, error) {
	if imported == nil || imported.Root == nil {
		return nil, fmt.Errorf("%w: scene has no root node", ErrModelLoad)
	}
	if imported.Incomplete {
		return nil, fmt.Errorf("%w: scene is incomplete", ErrModelLoad)
	}

	model := &Model{}
	var visit func(n *ImportedNode) error
	visit = func(n *ImportedNode) error {
		for _, idx := range n.MeshIndices {
			if idx < 0 || idx >= len(imported.Meshes) {
				return fmt.Errorf("%w: node %q references mesh %d of %d", ErrModelLoad, n.Name, idx, len(imported.Meshes))
			}
			mesh, err := buildMesh(&imported.Meshes[idx], imported.Materials, cache)
			if err != nil {
				return err
			}
			model.Meshes = append(model.Meshes, mesh)
		}
		for _, child := range n.Children {
			if err := visit(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(imported.Root); err != nil {
		return nil, err
	}
	return model, nil
}

func buildMesh(src *ImportedMesh, materials []ImportedMaterial, cache *TextureCache) (*Mesh, error) {
	mesh := NewMesh(src.Name)
	mesh.Vertices = make([]core.Vertex, len(src.Positions))
	for i, p := range src.Positions {
		v := core.Vertex{Position: p, Colour: white}
		if i < len(src.Normals) {
			v.Normal = src.Normals[i]
		}
		if i < len(src.UVs) {
			v.TexCoord = src.UVs[i]
		}
		mesh.Vertices[i] = v
	}

	mesh.Indices = make([]uint32, 0, len(src.Faces)*3)
	for _, f := range src.Faces {
		mesh.Indices = append(mesh.Indices, f[0], f[1], f[2])
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelLoad, err)
	}

	if src.Material >= 0 && src.Material < len(materials) && cache != nil {
		mat := materials[src.Material]
		mesh.Textures = append(mesh.Textures, loadMaterialTextures(cache, mat.Diffuse, TextureDiffuse)...)
		mesh.Textures = append(mesh.Textures, loadMaterialTextures(cache, mat.Specular, TextureSpecular)...)
	}
	return mesh, nil
}

func loadMaterialTextures(cache *TextureCache, refs []TextureRef, kind TextureKind) []*Texture {
	var out []*Texture
	for _, ref := range refs {
		tex, err := cache.Acquire(ref.Key, kind, ref.Open)
		if err != nil {
			core.LogWarn("model: %v", err)
			continue
		}
		out = append(out, tex)
	}
	return out
}
