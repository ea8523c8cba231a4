package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.6-core/gl"

	"gl-scene/renderer"
)

func enableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(onDebugMessage, nil)
	// Notifications are chatty and never actionable.
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DEBUG_SEVERITY_NOTIFICATION, 0, nil, false)
}

func onDebugMessage(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
	renderer.LogDriverMessage(renderer.DriverMessage{
		Source:   debugSource(source),
		Type:     debugType(gltype),
		ID:       id,
		Severity: debugSeverity(severity),
		Text:     message,
	})
}

func debugSeverity(s uint32) renderer.DebugSeverity {
	switch s {
	case gl.DEBUG_SEVERITY_HIGH:
		return renderer.SeverityHigh
	case gl.DEBUG_SEVERITY_MEDIUM:
		return renderer.SeverityMedium
	case gl.DEBUG_SEVERITY_LOW:
		return renderer.SeverityLow
	}
	return renderer.SeverityNotification
}

func debugSource(s uint32) string {
	switch s {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	}
	return "other"
}

func debugType(t uint32) string {
	switch t {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated behaviour"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behaviour"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	}
	return "other"
}
