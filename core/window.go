package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	events []Event
}

type WindowConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	Resizable    bool   `toml:"resizable"`
	VSync        bool   `toml:"vsync"`
	Fullscreen   bool   `toml:"fullscreen"`
	DebugContext bool   `toml:"debug_context"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:        1280,
		Height:       720,
		Title:        "gl-scene",
		Resizable:    true,
		VSync:        true,
		DebugContext: true,
	}
}

// EventKind tags the payload carried by an Event.
type EventKind int

const (
	EventKey EventKind = iota
	EventCursor
	EventScroll
	EventResize
)

// Event is one input or window notification collected during PollEvents.
type Event struct {
	Kind   EventKind
	Key    int
	Action int
	X, Y   float64
}

// Pressed reports whether a key event is a press or a repeat.
func (e Event) Pressed() bool {
	return e.Kind == EventKey && (e.Action == ActionPress || e.Action == ActionRepeat)
}

// NewWindow opens a window with an OpenGL 4.5 core context made current on
// the calling thread.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw: %w", ErrWindowInit, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, boolToInt(config.DebugContext))
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %w", ErrWindowInit, err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	width, height := handle.GetFramebufferSize()
	window := &Window{
		Handle: handle,
		Width:  width,
		Height: height,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		window.push(Event{Kind: EventResize, X: float64(width), Y: float64(height)})
	})
	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		window.push(Event{Kind: EventKey, Key: int(key), Action: int(action)})
	})
	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		window.push(Event{Kind: EventCursor, X: x, Y: y})
	})
	handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		window.push(Event{Kind: EventScroll, X: xoff, Y: yoff})
	})

	return window, nil
}

func (w *Window) push(e Event) {
	w.events = append(w.events, e)
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

// PollEvents pumps the glfw queue and returns the events gathered since the
// previous call. The slice is only valid until the next call.
func (w *Window) PollEvents() []Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// Present swaps the back buffer to the screen.
func (w *Window) Present() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	if w.Handle == nil {
		return
	}
	w.Handle.Destroy()
	w.Handle = nil
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// CaptureCursor hides and locks the cursor for mouse-look.
func (w *Window) CaptureCursor(captured bool) {
	if captured {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Time returns seconds since the window system was initialised.
func Time() float64 {
	return glfw.GetTime()
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const (
	ActionRelease = int(glfw.Release)
	ActionPress   = int(glfw.Press)
	ActionRepeat  = int(glfw.Repeat)
)

const (
	MouseButtonLeft  = int(glfw.MouseButtonLeft)
	MouseButtonRight = int(glfw.MouseButtonRight)
)

const (
	KeySpace        = int(glfw.KeySpace)
	KeyMinus        = int(glfw.KeyMinus)
	KeyEqual        = int(glfw.KeyEqual)
	KeyA            = int(glfw.KeyA)
	KeyD            = int(glfw.KeyD)
	KeyE            = int(glfw.KeyE)
	KeyG            = int(glfw.KeyG)
	KeyQ            = int(glfw.KeyQ)
	KeyS            = int(glfw.KeyS)
	KeyW            = int(glfw.KeyW)
	KeyLeftBracket  = int(glfw.KeyLeftBracket)
	KeyRightBracket = int(glfw.KeyRightBracket)
	KeyEscape       = int(glfw.KeyEscape)
	KeyF1           = int(glfw.KeyF1)
	KeyF5           = int(glfw.KeyF5)
	KeyLeftShift    = int(glfw.KeyLeftShift)
	KeyLeftControl  = int(glfw.KeyLeftControl)
)
