package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
	"gl-scene/scene"
)

const (
	cutoffStep = 0.5
	shineScale = 2
)

type titleSetter interface {
	SetTitle(title string)
}

// TitleOverlay shows camera and light state in the window title and edits
// Settings from keyboard shortcuts:
//
//	F1   toggle wireframe
//	G    toggle grass terrain
//	[ ]  narrow / widen the spot light
//	- =  halve / double material shininess
type TitleOverlay struct {
	target   titleSetter
	base     string
	settings *scene.Settings

	lines   []string
	text    string
	shown   string
	inFrame bool
}

func NewTitleOverlay() *TitleOverlay {
	return &TitleOverlay{}
}

func (o *TitleOverlay) Init(window *core.Window) error {
	if window == nil {
		return errors.New("gui: nil window")
	}
	o.attach(window, window.Title)
	return nil
}

func (o *TitleOverlay) attach(target titleSetter, base string) {
	o.target = target
	o.base = base
	o.shown = base
}

func (o *TitleOverlay) BeginFrame() {
	o.lines = o.lines[:0]
	o.inFrame = true
}

func (o *TitleOverlay) addLine(format string, args ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, args...))
}

func (o *TitleOverlay) DebugWindow(camPos, camRot mgl32.Vec3, settings *scene.Settings) {
	o.settings = settings
	if !o.inFrame {
		return
	}
	o.addLine("pos %.1f %.1f %.1f", camPos.X(), camPos.Y(), camPos.Z())
	o.addLine("pitch %.0f yaw %.0f", camRot.X(), camRot.Y())
	if settings == nil {
		return
	}
	o.addLine("cutoff %.1f", settings.SpotLight.Cutoff)
	o.addLine("shine %.0f", settings.MaterialShine)
	dist := settings.PointLight.Position.Sub(camPos).Len()
	o.addLine("point %.2f", settings.PointLight.Attenuation.Factor(dist))
	if settings.Wireframe {
		o.addLine("wireframe")
	}
	if !settings.Grass {
		o.addLine("ground")
	}
}

func (o *TitleOverlay) EndFrame() {
	o.inFrame = false
	if len(o.lines) == 0 {
		o.text = o.base
		return
	}
	o.text = o.base + " | " + strings.Join(o.lines, " | ")
}

// Render pushes the title to the window when it changed.
func (o *TitleOverlay) Render() {
	if o.target == nil || o.text == "" || o.text == o.shown {
		return
	}
	o.target.SetTitle(o.text)
	o.shown = o.text
}

// Text is the title built by the last EndFrame.
func (o *TitleOverlay) Text() string {
	return o.text
}

// Event applies keyboard shortcuts to the settings seen by the last
// DebugWindow call.
func (o *TitleOverlay) Event(e core.Event) {
	s := o.settings
	if s == nil || !e.Pressed() {
		return
	}
	switch e.Key {
	case core.KeyF1:
		if e.Action == core.ActionPress {
			s.Wireframe = !s.Wireframe
		}
	case core.KeyG:
		if e.Action == core.ActionPress {
			s.Grass = !s.Grass
		}
	case core.KeyLeftBracket:
		s.SpotLight.Cutoff -= cutoffStep
	case core.KeyRightBracket:
		s.SpotLight.Cutoff += cutoffStep
	case core.KeyMinus:
		s.MaterialShine /= shineScale
	case core.KeyEqual:
		s.MaterialShine *= shineScale
	default:
		return
	}
	s.Sanitise()
}

// Shutdown puts the original title back.
func (o *TitleOverlay) Shutdown() {
	if o.target != nil && o.shown != o.base {
		o.target.SetTitle(o.base)
	}
	o.target = nil
	o.settings = nil
}

var _ Overlay = (*TitleOverlay)(nil)
