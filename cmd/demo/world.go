package main

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/assets"
	"gl-scene/core"
	"gl-scene/renderer"
	"gl-scene/scene"
)

const (
	grassTexture  = "grass.png"
	groundTexture = "ground.png"
	crateTexture  = "crate.png"
	crateSpecular = "crate_specular.png"
	personTexture = "person.png"
)

// prop is a static drawable with its own transform.
type prop struct {
	transform core.Transform
	va        *renderer.VertexArray
	textures  []*scene.Texture
}

// world owns every vertex array the demo draws.
type world struct {
	arrays []*renderer.VertexArray

	terrain      prop
	grass        *scene.Texture
	ground       *scene.Texture
	props        []prop
	model        []prop
	billboardVA  *renderer.VertexArray
	billboardTex []*scene.Texture
	billboards   []mgl32.Vec3
	gizmo        prop
}

func buildWorld(dev renderer.Device, cache *scene.TextureCache, paths assets.Paths, cfg worldConfig) (w *world, err error) {
	w = &world{}
	defer func() {
		if err != nil {
			w.Destroy()
		}
	}()

	upload := func(mesh *scene.Mesh) (*renderer.VertexArray, error) {
		va, err := renderer.NewVertexArray(dev, mesh)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", mesh.Name, err)
		}
		w.arrays = append(w.arrays, va)
		return va, nil
	}
	load := func(name string, kind scene.TextureKind) (*scene.Texture, error) {
		return cache.Load(paths.Texture(name), kind)
	}

	// Terrain, centred on the origin.
	va, err := upload(scene.GenerateTerrain(cfg.TerrainSize, cfg.TerrainVertices))
	if err != nil {
		return nil, err
	}
	half := cfg.TerrainSize / 2
	w.terrain = prop{transform: core.NewTransform(mgl32.Vec3{-half, 0, -half}), va: va}
	if w.grass, err = load(grassTexture, scene.TextureDiffuse); err != nil {
		return nil, err
	}
	if w.ground, err = load(groundTexture, scene.TextureDiffuse); err != nil {
		return nil, err
	}

	// Crates.
	crate, err := load(crateTexture, scene.TextureDiffuse)
	if err != nil {
		return nil, err
	}
	crateSpec, err := load(crateSpecular, scene.TextureSpecular)
	if err != nil {
		return nil, err
	}
	va, err = upload(scene.GenerateCube(mgl32.Vec3{1, 1, 1}))
	if err != nil {
		return nil, err
	}
	for i := 0; i < 5; i++ {
		t := core.NewTransform(mgl32.Vec3{float32(i*3 - 6), 0.5, -4})
		t.Rotation = mgl32.Vec3{0, float32(i * 20), 0}
		w.props = append(w.props, prop{transform: t, va: va, textures: []*scene.Texture{crate, crateSpec}})
	}

	// Imported model.
	if path := paths.ModelPath(); path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			core.LogWarn("model %s not found, skipping", path)
		} else {
			model, err := scene.LoadModel(path, cache)
			if err != nil {
				return nil, err
			}
			at := core.NewTransform(mgl32.Vec3{0, 1.5, -10})
			for _, mesh := range model.Meshes {
				va, err := upload(mesh)
				if err != nil {
					return nil, err
				}
				w.model = append(w.model, prop{transform: at, va: va, textures: mesh.Textures})
			}
		}
	}

	// Billboards on a ring around the origin.
	person, err := cache.LoadFlipped(paths.Texture(personTexture), scene.TextureDiffuse, scene.FlipBoth)
	if err != nil {
		return nil, err
	}
	quad := scene.GenerateQuad(1, 2)
	for i := range quad.Vertices {
		quad.Vertices[i].Position[0] -= 0.5
	}
	if w.billboardVA, err = upload(quad); err != nil {
		return nil, err
	}
	w.billboardTex = []*scene.Texture{person}
	for i := 0; i < cfg.Billboards; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(cfg.Billboards)
		w.billboards = append(w.billboards, mgl32.Vec3{12 * math32.Cos(angle), 0, 12 * math32.Sin(angle)})
	}

	// Light gizmo.
	gizmo := scene.GenerateCube(mgl32.Vec3{0.2, 0.2, 0.2})
	if va, err = upload(gizmo); err != nil {
		return nil, err
	}
	w.gizmo = prop{va: va}
	return w, nil
}

// Groups lays the world out for one frame. Billboards face eye, the gizmo
// sits on the point light and the terrain texture follows Settings.Grass.
func (w *world) Groups(eye mgl32.Vec3, s *scene.Settings) []renderer.RenderGroup {
	terrainTex := w.ground
	if s.Grass {
		terrainTex = w.grass
	}
	groups := []renderer.RenderGroup{
		{Name: "terrain", Drawables: []renderer.Drawable{{
			VertexArray: w.terrain.va,
			Textures:    []*scene.Texture{terrainTex},
			Model:       w.terrain.transform.ModelMatrix(),
		}}},
		{Name: "props", Drawables: drawables(w.props)},
		{Name: "model", Drawables: drawables(w.model)},
	}

	bb := renderer.RenderGroup{Name: "billboards"}
	for _, pos := range w.billboards {
		bb.Drawables = append(bb.Drawables, renderer.Drawable{
			VertexArray: w.billboardVA,
			Textures:    w.billboardTex,
			Model:       scene.BillboardMatrix(pos, eye),
		})
	}
	groups = append(groups, bb, renderer.RenderGroup{Name: "light", Drawables: []renderer.Drawable{{
		VertexArray: w.gizmo.va,
		Model:       mgl32.Translate3D(s.PointLight.Position.Elem()),
		IsLight:     true,
	}}})
	return groups
}

func drawables(props []prop) []renderer.Drawable {
	out := make([]renderer.Drawable, 0, len(props))
	for _, p := range props {
		out = append(out, renderer.Drawable{
			VertexArray: p.va,
			Textures:    p.textures,
			Model:       p.transform.ModelMatrix(),
		})
	}
	return out
}

func (w *world) Destroy() {
	for _, va := range w.arrays {
		va.Destroy()
	}
	w.arrays = nil
}
