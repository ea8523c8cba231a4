// Package gui holds the debug overlay drawn over each frame.
package gui

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
	"gl-scene/scene"
)

// Overlay is the debug interface the frame loop drives. Calls arrive on the
// render thread in the order Event*, BeginFrame, DebugWindow, EndFrame,
// Render.
type Overlay interface {
	Init(window *core.Window) error
	BeginFrame()
	EndFrame()
	Render()
	Shutdown()
	Event(e core.Event)
	DebugWindow(camPos, camRot mgl32.Vec3, settings *scene.Settings)
}
