package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

const (
	maxPitch = 89.9
	fullTurn = 360
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a first-person view. Transform.Rotation.X is pitch and
// Transform.Rotation.Y is yaw, both in degrees; a yaw of 0 looks down +X.
type Camera struct {
	core.Transform
	FOV  float32
	Near float32
	Far  float32
}

func NewCamera(fov, near, far float32) *Camera {
	return &Camera{FOV: fov, Near: near, Far: far}
}

// Rotate adds to pitch and yaw and renormalises.
func (c *Camera) Rotate(dPitch, dYaw float32) {
	c.Rotation[0] += dPitch
	c.Rotation[1] += dYaw
	c.Normalise()
}

// Normalise wraps yaw into [0, 360) and clamps pitch short of straight up
// or down, where the look-at basis degenerates.
func (c *Camera) Normalise() {
	c.Rotation[0] = core.Clamp(c.Rotation[0], -maxPitch, maxPitch)
	c.Rotation[1] = core.Wrap(c.Rotation[1], fullTurn)
}

func (c *Camera) Pitch() float32 { return c.Rotation[0] }
func (c *Camera) Yaw() float32   { return c.Rotation[1] }

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	pitch := mgl32.DegToRad(c.Pitch())
	yaw := mgl32.DegToRad(c.Yaw())
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right is the unit vector to the camera's right, parallel to the ground.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// ProjectionMatrix takes the aspect ratio each call; the window size is the
// only source of truth for it.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// BillboardMatrix places a quad at position and turns it about Y to face
// eye. Any stored rotation of the object is ignored.
func BillboardMatrix(position, eye mgl32.Vec3) mgl32.Mat4 {
	angle := math32.Atan2(eye.X()-position.X(), eye.Z()-position.Z())
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DY(angle))
}
