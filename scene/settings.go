package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

const (
	minCutoff = 0.5
	maxCutoff = 89
	minShine  = 1
	maxShine  = 256
)

// Settings is the state the debug overlay edits between frames.
type Settings struct {
	DirLight      Light   `toml:"dir_light"`
	PointLight    Light   `toml:"point_light"`
	SpotLight     Light   `toml:"spot_light"`
	Wireframe     bool    `toml:"wireframe"`
	MaterialShine float32 `toml:"material_shine"`
	Grass         bool    `toml:"grass"`
}

func DefaultSettings() Settings {
	s := Settings{
		DirLight:      NewDirectionalLight(mgl32.Vec3{0.3, -8, 0.3}),
		PointLight:    NewPointLight(mgl32.Vec3{}),
		SpotLight:     NewSpotLight(mgl32.Vec3{}, mgl32.Vec3{0, -1, 0}, 12.5),
		MaterialShine: 32,
		Grass:         true,
	}

	s.DirLight.Base.AmbientIntensity = 0.02
	s.DirLight.Base.DiffuseIntensity = 0.02
	s.DirLight.Base.SpecularIntensity = 0

	s.PointLight.Base.AmbientIntensity = 0.3
	s.PointLight.Base.DiffuseIntensity = 1
	s.PointLight.Base.SpecularIntensity = 1
	s.PointLight.Attenuation = Attenuation{Constant: 1, Linear: 0.045, Quadratic: 0.0075}

	s.SpotLight.Base.AmbientIntensity = 0.012
	s.SpotLight.Base.DiffuseIntensity = 0.35
	s.SpotLight.Base.SpecularIntensity = 1
	s.SpotLight.Attenuation = Attenuation{Constant: 0.2, Linear: 0.016, Quadratic: 0.003}
	return s
}

// Sanitise restores the light kinds after decoding and keeps the editable
// values in usable ranges.
func (s *Settings) Sanitise() {
	s.DirLight.Kind = LightDirectional
	s.PointLight.Kind = LightPoint
	s.SpotLight.Kind = LightSpot
	s.SpotLight.Cutoff = core.Clamp(s.SpotLight.Cutoff, minCutoff, maxCutoff)
	s.MaterialShine = core.Clamp(s.MaterialShine, minShine, maxShine)
}

// FollowCamera puts the spot light at the eye, pointing where the camera looks.
func (s *Settings) FollowCamera(c *Camera) {
	s.SpotLight.Position = c.Position
	s.SpotLight.Direction = c.Front()
}
