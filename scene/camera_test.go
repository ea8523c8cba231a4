package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraNormalise(t *testing.T) {
	c := NewCamera(90, 0.1, 1000)

	c.Rotate(120, 370)
	assert.InDelta(t, 89.9, c.Pitch(), 1e-4)
	assert.InDelta(t, 10, c.Yaw(), 1e-4)

	c.Rotate(-300, -20)
	assert.InDelta(t, -89.9, c.Pitch(), 1e-4)
	assert.InDelta(t, 350, c.Yaw(), 1e-4)
}

func TestCameraNormaliseHugeYaw(t *testing.T) {
	c := NewCamera(90, 0.1, 1000)
	c.Rotation[1] = 1e10
	c.Normalise()
	assert.Equal(t, float32(280), c.Yaw())
}

func TestCameraFront(t *testing.T) {
	c := NewCamera(90, 0.1, 1000)
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-6))

	c.Rotation = mgl32.Vec3{0, 90, 0}
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6))

	c.Rotation = mgl32.Vec3{45, 0, 0}
	assert.InDelta(t, 1.0, c.Front().Len(), 1e-6)
	assert.Greater(t, c.Front().Y(), float32(0))
}

func TestCameraViewMatrixLooksAlongFront(t *testing.T) {
	c := NewCamera(60, 0.1, 100)
	c.Position = mgl32.Vec3{5, 2, -3}
	c.Rotation = mgl32.Vec3{10, 200, 0}

	view := c.ViewMatrix()
	eye := view.Mul4x1(c.Position.Vec4(1)).Vec3()
	assert.True(t, eye.ApproxEqualThreshold(mgl32.Vec3{}, 1e-4), "eye maps to origin, got %v", eye)

	ahead := view.Mul4x1(c.Position.Add(c.Front()).Vec4(1)).Vec3()
	assert.True(t, ahead.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-4), "front maps to -Z, got %v", ahead)
}

func TestCameraProjectionUsesAspect(t *testing.T) {
	c := NewCamera(90, 0.1, 100)
	wide := c.ProjectionMatrix(2)
	square := c.ProjectionMatrix(1)
	assert.InDelta(t, square.At(0, 0)/2, wide.At(0, 0), 1e-6)
	assert.Equal(t, square.At(1, 1), wide.At(1, 1))
}

func TestCameraRight(t *testing.T) {
	c := NewCamera(90, 0.1, 100)
	assert.True(t, c.Right().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6))
}

func TestBillboardFacesEye(t *testing.T) {
	pos := mgl32.Vec3{4, 1, 4}
	for _, eye := range []mgl32.Vec3{{4, 1, 10}, {10, 5, 4}, {-3, 0, -2}} {
		m := BillboardMatrix(pos, eye)
		normal := m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
		toEye := mgl32.Vec3{eye.X() - pos.X(), 0, eye.Z() - pos.Z()}.Normalize()
		assert.True(t, normal.ApproxEqualThreshold(toEye, 1e-5), "eye %v: normal %v", eye, normal)

		origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assert.True(t, origin.ApproxEqual(pos))
	}
}
