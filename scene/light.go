package scene

import "github.com/go-gl/mathgl/mgl32"

type LightKind int

const (
	LightDirectional LightKind = iota
	LightPoint
	LightSpot
)

func (k LightKind) String() string {
	switch k {
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	}
	return "unknown"
}

// LightBase is the colour and intensities every light carries.
type LightBase struct {
	Colour            mgl32.Vec3 `toml:"colour"`
	AmbientIntensity  float32    `toml:"ambient"`
	DiffuseIntensity  float32    `toml:"diffuse"`
	SpecularIntensity float32    `toml:"specular"`
}

// Attenuation is the constant/linear/quadratic distance falloff.
type Attenuation struct {
	Constant  float32 `toml:"constant"`
	Linear    float32 `toml:"linear"`
	Quadratic float32 `toml:"quadratic"`
}

// Factor returns the light multiplier at distance d.
func (a Attenuation) Factor(d float32) float32 {
	denom := a.Constant + a.Linear*d + a.Quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// Light is one of the three light kinds. Fields a kind does not use are
// ignored: directional lights have no position or attenuation, only spot
// lights have a cutoff.
type Light struct {
	Kind        LightKind   `toml:"-"`
	Base        LightBase   `toml:"base"`
	Attenuation Attenuation `toml:"attenuation"`
	Position    mgl32.Vec3  `toml:"position"`
	Direction   mgl32.Vec3  `toml:"direction"`
	Cutoff      float32     `toml:"cutoff"` // degrees, half-angle of the cone
}

func defaultBase() LightBase {
	return LightBase{
		Colour:            mgl32.Vec3{1, 1, 1},
		AmbientIntensity:  0.2,
		DiffuseIntensity:  0.2,
		SpecularIntensity: 0.2,
	}
}

func defaultAttenuation() Attenuation {
	return Attenuation{Constant: 1, Linear: 0.045, Quadratic: 0.0075}
}

func NewDirectionalLight(direction mgl32.Vec3) Light {
	return Light{Kind: LightDirectional, Base: defaultBase(), Direction: direction}
}

func NewPointLight(position mgl32.Vec3) Light {
	return Light{Kind: LightPoint, Base: defaultBase(), Attenuation: defaultAttenuation(), Position: position}
}

func NewSpotLight(position, direction mgl32.Vec3, cutoff float32) Light {
	return Light{
		Kind:        LightSpot,
		Base:        defaultBase(),
		Attenuation: defaultAttenuation(),
		Position:    position,
		Direction:   direction,
		Cutoff:      cutoff,
	}
}

// NormalisedDirection returns Direction as a unit vector, or straight down
// when Direction is zero.
func (l Light) NormalisedDirection() mgl32.Vec3 {
	if l.Direction.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.Direction.Normalize()
}
