package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"gl-scene/core"
)

// LoadModel imports a .gltf or .glb file and builds its meshes, resolving
// textures through cache. The load summary is logged.
func LoadModel(path string, cache *TextureCache) (*Model, error) {
	imported, err := ImportGLTF(path)
	if err != nil {
		return nil, err
	}
	model, err := BuildModel(imported, cache)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	model.Path = path

	s := model.Stats()
	core.LogInfo("loaded model %s: meshes %d, vertices %d, indices %d, textures %d",
		path, s.Meshes, s.Vertices, s.Indices, s.Textures)
	return model, nil
}

// ImportGLTF maps a glTF document onto an ImportedScene. Node transforms are
// not applied; meshes come out in their own space. PBR materials map onto the
// diffuse/specular pair: base colour becomes the diffuse map and the
// metallic-roughness map stands in for specular.
func ImportGLTF(path string) (*ImportedScene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: gltf open %q: %w", ErrModelLoad, path, err)
	}
	dir := filepath.Dir(path)
	out := &ImportedScene{}

	// Textures
	refs := make([]*TextureRef, len(doc.Textures))
	for i, gt := range doc.Textures {
		if gt.Source == nil || *gt.Source >= len(doc.Images) {
			continue
		}
		refs[i] = gltfImageRef(doc, path, dir, *gt.Source)
	}
	refAt := func(info *gltf.TextureInfo) []TextureRef {
		if info == nil || info.Index >= len(refs) || refs[info.Index] == nil {
			return nil
		}
		return []TextureRef{*refs[info.Index]}
	}

	// Materials
	for _, gm := range doc.Materials {
		mat := ImportedMaterial{Name: gm.Name}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			mat.Diffuse = refAt(pbr.BaseColorTexture)
			mat.Specular = refAt(pbr.MetallicRoughnessTexture)
		}
		out.Materials = append(out.Materials, mat)
	}

	// Mesh primitives, one ImportedMesh each
	meshPrims := make([][]int, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := importGLTFPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				core.LogWarn("gltf: mesh %d prim %d: %v", mi, pi, err)
				out.Incomplete = true
				continue
			}
			meshPrims[mi] = append(meshPrims[mi], len(out.Meshes))
			out.Meshes = append(out.Meshes, *m)
		}
	}

	// Nodes
	nodes := make([]*ImportedNode, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}
		n := &ImportedNode{Name: name}
		if gn.Mesh != nil && *gn.Mesh < len(meshPrims) {
			n.MeshIndices = meshPrims[*gn.Mesh]
		}
		nodes[i] = n
	}
	hasParent := make([]bool, len(nodes))
	for i, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(nodes) {
				nodes[i].Children = append(nodes[i].Children, nodes[c])
				hasParent[c] = true
			}
		}
	}

	// Roots hang off a synthetic root so the tree has a single entry point.
	root := &ImportedNode{Name: filepath.Base(path)}
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		for _, idx := range doc.Scenes[*doc.Scene].Nodes {
			if idx < len(nodes) {
				root.Children = append(root.Children, nodes[idx])
			}
		}
	} else {
		for i, n := range nodes {
			if !hasParent[i] {
				root.Children = append(root.Children, n)
			}
		}
	}
	if len(root.Children) > 0 {
		out.Root = root
	}
	return out, nil
}

// gltfImageRef builds a cache reference for image i. External files are keyed
// by their resolved path so several models share them; embedded images are
// keyed by model path and image index.
func gltfImageRef(doc *gltf.Document, path, dir string, i int) *TextureRef {
	img := doc.Images[i]
	switch {
	case img.BufferView != nil:
		bv := *img.BufferView
		return &TextureRef{
			Key: fmt.Sprintf("%s#image%d", path, i),
			Open: func() (*Image, error) {
				raw, err := modeler.ReadBufferView(doc, doc.BufferViews[bv])
				if err != nil {
					return nil, err
				}
				return DecodeImage(raw, FlipNone)
			},
		}
	case img.IsEmbeddedResource():
		return &TextureRef{
			Key: fmt.Sprintf("%s#image%d", path, i),
			Open: func() (*Image, error) {
				raw, err := img.MarshalData()
				if err != nil {
					return nil, err
				}
				return DecodeImage(raw, FlipNone)
			},
		}
	case img.URI != "":
		file := filepath.Join(dir, img.URI)
		return &TextureRef{
			Key: file,
			Open: func() (*Image, error) {
				return LoadImage(file, FlipNone)
			},
		}
	}
	return nil
}

func importGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*ImportedMesh, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("unsupported primitive mode %v", prim.Mode)
	}
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	m := &ImportedMesh{Name: name, Material: -1}
	m.Positions = make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		m.Positions[i] = p
	}

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
		m.Normals = make([]mgl32.Vec3, len(normals))
		for i, n := range normals {
			m.Normals[i] = n
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("uvs: %w", err)
		}
		m.UVs = make([]mgl32.Vec2, len(uvs))
		for i, uv := range uvs {
			m.UVs[i] = uv
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%d indices do not form whole triangles", len(indices))
	}
	for i := 0; i < len(indices); i += 3 {
		m.Faces = append(m.Faces, [3]uint32{indices[i], indices[i+1], indices[i+2]})
	}

	if prim.Material != nil {
		m.Material = *prim.Material
	}
	return m, nil
}
