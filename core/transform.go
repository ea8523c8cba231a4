package core

import "github.com/go-gl/mathgl/mgl32"

// Transform is the per-entity placement. Rotation holds Euler angles in
// degrees around X, Y and Z.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

// NewTransform returns a transform at position with no rotation.
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{Position: position}
}

// ModelMatrix composes translate · rotateX · rotateY · rotateZ. The order is
// fixed: a vertex is rotated about Z, then Y, then X, then translated.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z())))
}

// Translate moves the transform by delta.
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}
