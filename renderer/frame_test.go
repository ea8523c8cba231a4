package renderer

import (
	"strconv"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gl-scene/scene"
)

type recorder struct {
	dev  *fakeDevice
	name string
}

func (r *recorder) Render()  { r.dev.record("%s.Render()", r.name) }
func (r *recorder) Present() { r.dev.record("%s.Present()", r.name) }

type frameFixture struct {
	dev      *fakeDevice
	renderer *FrameRenderer
	target   *Framebuffer
	terrain  *VertexArray
	gizmo    *VertexArray
	camera   *scene.Camera
	settings scene.Settings
}

func newFrameFixture(t *testing.T) *frameFixture {
	t.Helper()
	dev := newFakeDevice(
		"projection_matrix", "view_matrix", "eye_position", "material.shininess",
		"model_matrix", "is_light", "diffuse_texture0", "specular_texture0", "screen_texture",
	)
	target, err := NewFramebuffer(dev, 320, 240)
	require.NoError(t, err)
	sceneProg, err := NewProgram(dev, vertSrc, fragSrc)
	require.NoError(t, err)
	screenProg, err := NewProgram(dev, vertSrc, fragSrc)
	require.NoError(t, err)
	terrain, err := NewVertexArray(dev, scene.GenerateTerrain(10, 3))
	require.NoError(t, err)
	gizmo, err := NewVertexArray(dev, scene.GenerateCube(mgl32.Vec3{1, 1, 1}))
	require.NoError(t, err)

	r := NewFrameRenderer(dev, target, sceneProg, screenProg,
		&recorder{dev: dev, name: "overlay"}, &recorder{dev: dev, name: "window"})
	dev.reset()

	return &frameFixture{
		dev:      dev,
		renderer: r,
		target:   target,
		terrain:  terrain,
		gizmo:    gizmo,
		camera:   scene.NewCamera(60, 0.1, 100),
		settings: scene.DefaultSettings(),
	}
}

func (fx *frameFixture) frame() *Frame {
	return &Frame{
		Camera:   fx.camera,
		Settings: &fx.settings,
		Groups: []RenderGroup{
			{Name: "terrain", Drawables: []Drawable{{
				VertexArray: fx.terrain,
				Textures:    []*scene.Texture{tex(50, scene.TextureDiffuse)},
				Model:       mgl32.Ident4(),
			}}},
			{Name: "light gizmo", Drawables: []Drawable{{
				VertexArray: fx.gizmo,
				Model:       mgl32.Translate3D(0, 5, 0),
				IsLight:     true,
			}}},
		},
		ScreenWidth:  1280,
		ScreenHeight: 720,
	}
}

// indexOf returns the position of the first call starting with prefix at or
// after from, or -1.
func indexOf(calls []string, from int, prefix string) int {
	for i := from; i < len(calls); i++ {
		if strings.HasPrefix(calls[i], prefix) {
			return i
		}
	}
	return -1
}

func TestFrameCallOrder(t *testing.T) {
	fx := newFrameFixture(t)
	require.NoError(t, fx.renderer.Render(fx.frame()))
	calls := fx.dev.calls

	steps := []string{
		"BindFramebuffer(" + itoa(fx.target.FBO) + ")",
		"Viewport(320, 240)",
		"Clear(",
		"Enable(0)",
		"Enable(1)",
		"SetPolygonMode(0)",
		"UseProgram(",
		"ProgramUniformMat4(projection_matrix)",
		"ProgramUniformMat4(view_matrix)",
		"ProgramUniformVec3(eye_position",
		"ProgramUniformFloat(material.shininess, 32)",
		// terrain
		"BindTextureUnit(0, 50)",
		"ProgramUniformInt(diffuse_texture0, 0)",
		"ProgramUniformMat4(model_matrix)",
		"ProgramUniformInt(is_light, 0)",
		"BindVertexArray(" + itoa(fx.terrain.VAO) + ")",
		"DrawElements(24)",
		// gizmo
		"ProgramUniformMat4(model_matrix)",
		"ProgramUniformInt(is_light, 1)",
		"BindVertexArray(" + itoa(fx.gizmo.VAO) + ")",
		"DrawElements(36)",
		// screen pass
		"BindFramebuffer(0)",
		"Viewport(1280, 720)",
		"SetPolygonMode(0)",
		"Clear(",
		"Disable(0)",
		"UseProgram(",
		"ProgramUniformInt(screen_texture, 0)",
		"BindTextureUnit(0, " + itoa(fx.target.ColourTexture) + ")",
		"BindVertexArray(" + itoa(fx.renderer.emptyVAO) + ")",
		"DrawArrays(0, 6)",
		"overlay.Render()",
		"window.Present()",
	}
	pos := 0
	for _, step := range steps {
		i := indexOf(calls, pos, step)
		require.NotEqual(t, -1, i, "missing %q after call %d in\n%s", step, pos, strings.Join(calls, "\n"))
		pos = i + 1
	}
	assert.Equal(t, 2, fx.dev.count("DrawElements"))
	assert.Equal(t, 1, fx.dev.count("DrawArrays"))
}

func TestFrameWireframe(t *testing.T) {
	fx := newFrameFixture(t)
	fx.settings.Wireframe = true
	require.NoError(t, fx.renderer.Render(fx.frame()))

	line := indexOf(fx.dev.calls, 0, "SetPolygonMode(1)")
	draw := indexOf(fx.dev.calls, 0, "DrawElements")
	fill := indexOf(fx.dev.calls, 0, "SetPolygonMode(0)")
	require.NotEqual(t, -1, line)
	assert.Less(t, line, draw)
	assert.Greater(t, fill, draw, "screen pass always fills")
}

func TestFrameProjectionUsesLiveAspect(t *testing.T) {
	fx := newFrameFixture(t)
	f := fx.frame()
	require.NoError(t, fx.renderer.Render(f))
	wide := fx.dev.uniforms["projection_matrix"].(mgl32.Mat4)

	f.ScreenWidth, f.ScreenHeight = 720, 720
	require.NoError(t, fx.renderer.Render(f))
	square := fx.dev.uniforms["projection_matrix"].(mgl32.Mat4)

	assert.InDelta(t, square.At(0, 0)*720/1280, wide.At(0, 0), 1e-5)
}

func TestFrameFallbackTexture(t *testing.T) {
	fx := newFrameFixture(t)
	fx.renderer.SetFallbackTexture(99)
	require.NoError(t, fx.renderer.Render(fx.frame()))

	// terrain has a diffuse map, so only its specular unit falls back; the
	// gizmo has none and gets both.
	assert.Equal(t, 1, fx.dev.count("BindTextureUnit(0, 99)"))
	assert.Equal(t, 2, fx.dev.count("BindTextureUnit(1, 99)"))
}

func TestFrameSkipsDestroyedGeometry(t *testing.T) {
	fx := newFrameFixture(t)
	fx.gizmo.Destroy()
	fx.dev.reset()
	require.NoError(t, fx.renderer.Render(fx.frame()))
	assert.Equal(t, 1, fx.dev.count("DrawElements"))
}

func TestFrameNeedsCameraAndSettings(t *testing.T) {
	fx := newFrameFixture(t)
	assert.Error(t, fx.renderer.Render(&Frame{Settings: &fx.settings}))
	assert.Error(t, fx.renderer.Render(&Frame{Camera: fx.camera}))
	assert.Empty(t, fx.dev.calls)
}

func TestFrameRendererDestroy(t *testing.T) {
	fx := newFrameFixture(t)
	vao := fx.renderer.emptyVAO
	fx.renderer.Destroy()
	fx.renderer.Destroy()
	assert.Equal(t, []string{"DeleteVertexArray(" + itoa(vao) + ")"}, fx.dev.calls)
}

func itoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
