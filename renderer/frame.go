package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/scene"
)

// Uniform names shared with assets/shaders.
const (
	uniformProjection    = "projection_matrix"
	uniformView          = "view_matrix"
	uniformEye           = "eye_position"
	uniformModel         = "model_matrix"
	uniformIsLight       = "is_light"
	uniformShininess     = "material.shininess"
	uniformScreenTexture = "screen_texture"
)

// Drawable is one indexed draw: geometry, the textures it samples and where
// it sits.
type Drawable struct {
	VertexArray *VertexArray
	Textures    []*scene.Texture
	Model       mgl32.Mat4
	IsLight     bool
}

// RenderGroup is an ordered batch of drawables, e.g. all billboards.
type RenderGroup struct {
	Name      string
	Drawables []Drawable
}

// Frame is everything one Render call needs.
type Frame struct {
	Camera       *scene.Camera
	Settings     *scene.Settings
	Groups       []RenderGroup
	ClearColour  mgl32.Vec4
	ScreenWidth  int32
	ScreenHeight int32
}

// Aspect is the live aspect ratio of the window.
func (f *Frame) Aspect() float32 {
	if f.ScreenWidth <= 0 || f.ScreenHeight <= 0 {
		return 1
	}
	return float32(f.ScreenWidth) / float32(f.ScreenHeight)
}

// Overlay is drawn on top of the composited frame.
type Overlay interface {
	Render()
}

// Presenter shows the finished frame, typically by swapping buffers.
type Presenter interface {
	Present()
}

// FrameRenderer draws the scene into an offscreen target, then draws that
// target's colour texture over the whole window.
type FrameRenderer struct {
	dev       Device
	target    *Framebuffer
	scene     *Program
	screen    *Program
	overlay   Overlay
	presenter Presenter
	emptyVAO  uint32
	fallback  uint32
}

// NewFrameRenderer takes ownership of nothing: target and programs are
// destroyed by the caller. overlay may be nil.
func NewFrameRenderer(dev Device, target *Framebuffer, sceneProg, screenProg *Program, overlay Overlay, presenter Presenter) *FrameRenderer {
	r := &FrameRenderer{
		dev:       dev,
		target:    target,
		scene:     sceneProg,
		screen:    screenProg,
		overlay:   overlay,
		presenter: presenter,
		emptyVAO:  dev.CreateVertexArray(),
	}
	dev.ObjectLabel(ObjectVertexArray, r.emptyVAO, "screen pass")
	return r
}

// SetFallbackTexture sets the texture bound to the diffuse and specular units
// for drawables that lack one.
func (r *FrameRenderer) SetFallbackTexture(handle uint32) {
	r.fallback = handle
}

// Render draws and presents one frame.
func (r *FrameRenderer) Render(f *Frame) error {
	if f.Camera == nil || f.Settings == nil {
		return fmt.Errorf("render: frame needs a camera and settings")
	}
	r.scenePass(f)
	r.screenPass(f)
	if r.overlay != nil {
		r.overlay.Render()
	}
	if r.presenter != nil {
		r.presenter.Present()
	}
	return nil
}

// ── Scene pass ────────────────────────────────────────────────────────────────

func (r *FrameRenderer) scenePass(f *Frame) {
	r.target.Bind()
	r.dev.Clear(f.ClearColour)
	r.dev.Enable(CapDepthTest)
	r.dev.Enable(CapCullFace)
	if f.Settings.Wireframe {
		r.dev.SetPolygonMode(PolygonLine)
	} else {
		r.dev.SetPolygonMode(PolygonFill)
	}

	p := r.scene
	p.Bind()
	p.SetMat4(uniformProjection, f.Camera.ProjectionMatrix(f.Aspect()))
	p.SetMat4(uniformView, f.Camera.ViewMatrix())
	p.SetVec3(uniformEye, f.Camera.Position)
	p.SetFloat(uniformShininess, f.Settings.MaterialShine)
	UploadLights(p, f.Settings)

	for _, group := range f.Groups {
		for i := range group.Drawables {
			r.draw(&group.Drawables[i])
		}
	}
}

func (r *FrameRenderer) draw(d *Drawable) {
	if d.VertexArray == nil || d.VertexArray.VAO == 0 {
		return
	}
	bindings := AssignTextureUnits(d.Textures)
	var haveDiffuse, haveSpecular bool
	for _, b := range bindings {
		switch b.Unit {
		case DiffuseUnit:
			haveDiffuse = true
		case SpecularUnit:
			haveSpecular = true
		}
		r.dev.BindTextureUnit(b.Unit, b.Handle)
		r.scene.SetInt(b.Uniform, int32(b.Unit))
	}
	if r.fallback != 0 {
		if !haveDiffuse {
			r.dev.BindTextureUnit(DiffuseUnit, r.fallback)
		}
		if !haveSpecular {
			r.dev.BindTextureUnit(SpecularUnit, r.fallback)
		}
	}

	r.scene.SetMat4(uniformModel, d.Model)
	var isLight int32
	if d.IsLight {
		isLight = 1
	}
	r.scene.SetInt(uniformIsLight, isLight)

	d.VertexArray.Bind()
	d.VertexArray.Draw()
}

// ── Screen pass ───────────────────────────────────────────────────────────────

func (r *FrameRenderer) screenPass(f *Frame) {
	r.dev.BindFramebuffer(0)
	r.dev.Viewport(f.ScreenWidth, f.ScreenHeight)
	r.dev.SetPolygonMode(PolygonFill)
	r.dev.Clear(f.ClearColour)
	r.dev.Disable(CapDepthTest)

	r.screen.Bind()
	r.screen.SetInt(uniformScreenTexture, 0)
	r.dev.BindTextureUnit(0, r.target.ColourTexture)
	r.dev.BindVertexArray(r.emptyVAO)
	// Two triangles; positions come from gl_VertexID in screen.vert.
	r.dev.DrawArrays(0, 6)
}

// Destroy releases the empty vertex array used by the screen pass.
func (r *FrameRenderer) Destroy() {
	if r.emptyVAO != 0 {
		r.dev.DeleteVertexArray(r.emptyVAO)
		r.emptyVAO = 0
	}
}
