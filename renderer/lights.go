package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/scene"
)

// Uniform names shared with assets/shaders/scene.frag.
const (
	uniformDirLight   = "dir_light"
	uniformPointLight = "point_light"
	uniformSpotLight  = "spot_light"
)

// UploadLight writes one light into the struct uniform called name. Only the
// members the light's kind declares are written; a spot cutoff is sent as
// the cosine of the angle in degrees.
func UploadLight(p *Program, name string, l scene.Light) {
	p.SetVec3(name+".base.colour", l.Base.Colour)
	p.SetFloat(name+".base.ambient_intensity", l.Base.AmbientIntensity)
	p.SetFloat(name+".base.diffuse_intensity", l.Base.DiffuseIntensity)
	p.SetFloat(name+".base.specular_intensity", l.Base.SpecularIntensity)

	switch l.Kind {
	case scene.LightDirectional:
		p.SetVec3(name+".direction", l.NormalisedDirection())
	case scene.LightPoint:
		uploadAttenuation(p, name, l.Attenuation)
		p.SetVec3(name+".position", l.Position)
	case scene.LightSpot:
		uploadAttenuation(p, name, l.Attenuation)
		p.SetVec3(name+".position", l.Position)
		p.SetVec3(name+".direction", l.NormalisedDirection())
		p.SetFloat(name+".cutoff", math32.Cos(mgl32.DegToRad(l.Cutoff)))
	}
}

func uploadAttenuation(p *Program, name string, a scene.Attenuation) {
	p.SetFloat(name+".att.constant", a.Constant)
	p.SetFloat(name+".att.linear", a.Linear)
	p.SetFloat(name+".att.exponant", a.Quadratic)
}

// UploadLights writes the three lights of s.
func UploadLights(p *Program, s *scene.Settings) {
	UploadLight(p, uniformDirLight, s.DirLight)
	UploadLight(p, uniformPointLight, s.PointLight)
	UploadLight(p, uniformSpotLight, s.SpotLight)
}
