package renderer

import (
	"fmt"

	"gl-scene/scene"
)

const (
	DiffuseUnit  = 0
	SpecularUnit = 1
	firstExtra   = 2
)

// TextureBinding is one texture bound to a unit and the sampler uniform
// that reads it.
type TextureBinding struct {
	Unit    uint32
	Uniform string
	Handle  uint32
}

// AssignTextureUnits maps a mesh's textures onto units. The first diffuse map
// takes unit 0 and the first specular map unit 1; every other texture takes
// the next free unit from 2 upward in list order, named <kind>_texture<N>
// with N counted per kind.
func AssignTextureUnits(textures []*scene.Texture) []TextureBinding {
	bindings := make([]TextureBinding, 0, len(textures))
	counts := make(map[scene.TextureKind]int)
	next := uint32(firstExtra)

	for _, tex := range textures {
		if tex == nil {
			continue
		}
		n := counts[tex.Kind]
		counts[tex.Kind] = n + 1

		unit := next
		switch {
		case n == 0 && tex.Kind == scene.TextureDiffuse:
			unit = DiffuseUnit
		case n == 0 && tex.Kind == scene.TextureSpecular:
			unit = SpecularUnit
		default:
			next++
		}
		bindings = append(bindings, TextureBinding{
			Unit:    unit,
			Uniform: fmt.Sprintf("%s_texture%d", tex.Kind, n),
			Handle:  tex.Handle,
		})
	}
	return bindings
}
