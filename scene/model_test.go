package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(name string, material int) ImportedMesh {
	return ImportedMesh{
		Name:      name,
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Faces:     [][3]uint32{{0, 1, 2}},
		Material:  material,
	}
}

func TestBuildModelVisitsNodesDepthFirst(t *testing.T) {
	imported := &ImportedScene{
		Meshes: []ImportedMesh{triangle("a", -1), triangle("b", -1), triangle("c", -1)},
		Root: &ImportedNode{
			Name:        "root",
			MeshIndices: []int{2},
			Children: []*ImportedNode{
				{Name: "left", MeshIndices: []int{0}, Children: []*ImportedNode{{Name: "leaf", MeshIndices: []int{1}}}},
				{Name: "right", MeshIndices: []int{0}},
			},
		},
	}
	model, err := BuildModel(imported, NewTextureCache(&fakeUploader{}))
	require.NoError(t, err)

	var names []string
	for _, m := range model.Meshes {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"c", "a", "b", "a"}, names)
	assert.Equal(t, ModelStats{Meshes: 4, Vertices: 12, Indices: 12}, model.Stats())
}

func TestBuildModelDefaultsMissingChannels(t *testing.T) {
	mesh := triangle("bare", -1)
	mesh.Normals = nil
	imported := &ImportedScene{
		Meshes: []ImportedMesh{mesh},
		Root:   &ImportedNode{MeshIndices: []int{0}},
	}
	model, err := BuildModel(imported, nil)
	require.NoError(t, err)
	require.Len(t, model.Meshes, 1)
	for _, v := range model.Meshes[0].Vertices {
		assert.Equal(t, mgl32.Vec2{0, 0}, v.TexCoord)
		assert.Equal(t, mgl32.Vec3{0, 0, 0}, v.Normal)
	}
	assert.Equal(t, []uint32{0, 1, 2}, model.Meshes[0].Indices)
}

func TestBuildModelResolvesTexturesThroughCache(t *testing.T) {
	up := &fakeUploader{}
	cache := NewTextureCache(up)
	ref := func(key string) TextureRef { return TextureRef{Key: key, Open: solid} }

	imported := &ImportedScene{
		Meshes: []ImportedMesh{triangle("a", 0), triangle("b", 0)},
		Materials: []ImportedMaterial{{
			Name:     "shared",
			Specular: []TextureRef{ref("spec.png")},
			Diffuse:  []TextureRef{ref("diff.png"), ref("detail.png")},
		}},
		Root: &ImportedNode{MeshIndices: []int{0, 1}},
	}
	model, err := BuildModel(imported, cache)
	require.NoError(t, err)
	require.Len(t, model.Meshes, 2)

	a, b := model.Meshes[0], model.Meshes[1]
	require.Len(t, a.Textures, 3)
	assert.Equal(t, "diff.png", a.Textures[0].Path)
	assert.Equal(t, "detail.png", a.Textures[1].Path)
	assert.Equal(t, TextureSpecular, a.Textures[2].Kind)
	for i := range a.Textures {
		assert.Same(t, a.Textures[i], b.Textures[i])
	}
	assert.Equal(t, 3, up.uploads)
}

func TestBuildModelSkipsBrokenTextures(t *testing.T) {
	imported := &ImportedScene{
		Meshes: []ImportedMesh{triangle("a", 0)},
		Materials: []ImportedMaterial{{
			Diffuse: []TextureRef{{Key: "bad", Open: func() (*Image, error) { return nil, ErrNotImage }}},
		}},
		Root: &ImportedNode{MeshIndices: []int{0}},
	}
	model, err := BuildModel(imported, NewTextureCache(&fakeUploader{}))
	require.NoError(t, err)
	assert.Empty(t, model.Meshes[0].Textures)
}

func TestBuildModelFailures(t *testing.T) {
	tests := []struct {
		name     string
		imported *ImportedScene
	}{
		{"nil scene", nil},
		{"no root", &ImportedScene{Meshes: []ImportedMesh{triangle("a", -1)}}},
		{"incomplete", &ImportedScene{Root: &ImportedNode{}, Incomplete: true}},
		{"bad mesh index", &ImportedScene{Root: &ImportedNode{MeshIndices: []int{3}}}},
		{"bad face", &ImportedScene{
			Meshes: []ImportedMesh{{Positions: []mgl32.Vec3{{}}, Faces: [][3]uint32{{0, 1, 2}}, Material: -1}},
			Root:   &ImportedNode{MeshIndices: []int{0}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := BuildModel(tt.imported, nil)
			require.ErrorIs(t, err, ErrModelLoad)
			assert.Nil(t, model)
		})
	}
}

func TestImportGLTF(t *testing.T) {
	imported, err := ImportGLTF("testdata/triangle.gltf")
	require.NoError(t, err)
	require.NotNil(t, imported.Root)
	assert.False(t, imported.Incomplete)

	require.Len(t, imported.Meshes, 1)
	mesh := imported.Meshes[0]
	assert.Equal(t, "tri_p0", mesh.Name)
	assert.Equal(t, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, mesh.Positions)
	assert.Nil(t, mesh.UVs)
	assert.Equal(t, [][3]uint32{{0, 1, 2}}, mesh.Faces)
	assert.Equal(t, 0, mesh.Material)

	require.Len(t, imported.Materials, 1)
	mat := imported.Materials[0]
	require.Len(t, mat.Diffuse, 1)
	require.Len(t, mat.Specular, 1)
	assert.Equal(t, "testdata/albedo.png", mat.Diffuse[0].Key)
}

func TestImportGLTFRaggedIndicesMarkIncomplete(t *testing.T) {
	imported, err := ImportGLTF("testdata/ragged.gltf")
	require.NoError(t, err)
	assert.True(t, imported.Incomplete)

	require.Len(t, imported.Meshes, 1, "only the whole-triangle primitive is kept")
	assert.Equal(t, "ragged_p0", imported.Meshes[0].Name)
	assert.Equal(t, [][3]uint32{{0, 1, 2}}, imported.Meshes[0].Faces)

	_, err = BuildModel(imported, nil)
	assert.ErrorIs(t, err, ErrModelLoad)
}

func TestLoadModel(t *testing.T) {
	up := &fakeUploader{}
	cache := NewTextureCache(up)

	model, err := LoadModel("testdata/triangle.gltf", cache)
	require.NoError(t, err)
	require.Len(t, model.Meshes, 2, "root node and its child both reference the mesh")

	// the missing specular image is skipped, the diffuse one uploads once
	for _, m := range model.Meshes {
		require.Len(t, m.Textures, 1)
		assert.Equal(t, TextureDiffuse, m.Textures[0].Kind)
		assert.Equal(t, 2, m.Textures[0].Width)
	}
	assert.Equal(t, 1, up.uploads)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel("testdata/nope.glb", NewTextureCache(&fakeUploader{}))
	assert.ErrorIs(t, err, ErrModelLoad)
}
