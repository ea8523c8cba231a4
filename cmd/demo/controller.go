package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
	"gl-scene/scene"
)

const (
	maxStep     = 0.05 // seconds; larger frame times are clamped
	sprintScale = 4
)

// input is the part of core.Window the controller reads.
type input interface {
	IsKeyPressed(key int) bool
	IsMouseButtonPressed(button int) bool
	GetCursorPos() (float64, float64)
	CaptureCursor(captured bool)
}

// cameraController flies the camera: WASD to move, E/Space up, Q down,
// shift to go faster, right mouse drag to look around.
type cameraController struct {
	moveSpeed  float32 // units per second
	lookSpeed  float32 // degrees per pixel
	lastMouseX float64
	lastMouseY float64
	firstMouse bool
	captured   bool
}

func newCameraController() *cameraController {
	return &cameraController{
		moveSpeed:  6,
		lookSpeed:  0.15,
		firstMouse: true,
	}
}

func (cc *cameraController) Update(in input, camera *scene.Camera, dt float32) {
	dt = core.Clamp(dt, 0, maxStep)

	looking := in.IsMouseButtonPressed(core.MouseButtonRight)
	if looking != cc.captured {
		in.CaptureCursor(looking)
		cc.captured = looking
	}
	if looking {
		x, y := in.GetCursorPos()
		if cc.firstMouse {
			cc.lastMouseX, cc.lastMouseY = x, y
			cc.firstMouse = false
		}
		dYaw := float32(x-cc.lastMouseX) * cc.lookSpeed
		dPitch := float32(cc.lastMouseY-y) * cc.lookSpeed
		cc.lastMouseX, cc.lastMouseY = x, y
		camera.Rotate(dPitch, dYaw)
	} else {
		cc.firstMouse = true
	}

	speed := cc.moveSpeed * dt
	if in.IsKeyPressed(core.KeyLeftShift) {
		speed *= sprintScale
	}
	front := camera.Front()
	right := camera.Right()
	up := mgl32.Vec3{0, 1, 0}

	var move mgl32.Vec3
	if in.IsKeyPressed(core.KeyW) {
		move = move.Add(front)
	}
	if in.IsKeyPressed(core.KeyS) {
		move = move.Sub(front)
	}
	if in.IsKeyPressed(core.KeyD) {
		move = move.Add(right)
	}
	if in.IsKeyPressed(core.KeyA) {
		move = move.Sub(right)
	}
	if in.IsKeyPressed(core.KeyE) || in.IsKeyPressed(core.KeySpace) {
		move = move.Add(up)
	}
	if in.IsKeyPressed(core.KeyQ) {
		move = move.Sub(up)
	}
	if move.Len() == 0 {
		return
	}
	camera.Translate(move.Normalize().Mul(speed))
}
