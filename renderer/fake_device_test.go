package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

// fakeDevice records every call and hands out increasing object names.
type fakeDevice struct {
	next  uint32
	calls []string

	failCompile  map[ShaderStage]bool
	failLink     bool
	failValidate bool
	incomplete   bool

	// active uniforms of every program; absent names resolve to -1
	active   map[string]int32
	lookups  map[string]int
	uniforms map[string]any // last value uploaded per uniform name
	attribs  []core.VertexAttribute
	storage  map[uint32]int
	labels   map[uint32]string
}

func newFakeDevice(activeUniforms ...string) *fakeDevice {
	d := &fakeDevice{
		failCompile: make(map[ShaderStage]bool),
		active:      make(map[string]int32),
		lookups:     make(map[string]int),
		uniforms:    make(map[string]any),
		storage:     make(map[uint32]int),
		labels:      make(map[uint32]string),
	}
	for i, name := range activeUniforms {
		d.active[name] = int32(i)
	}
	return d
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) gen(kind string) uint32 {
	d.next++
	d.record("Create%s() = %d", kind, d.next)
	return d.next
}

// callNames returns the method names called, in order.
func (d *fakeDevice) callNames() []string {
	out := make([]string, len(d.calls))
	for i, c := range d.calls {
		out[i] = c[:strings.IndexByte(c, '(')]
	}
	return out
}

func (d *fakeDevice) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *fakeDevice) reset() { d.calls = nil }

func (d *fakeDevice) nameOf(loc int32) string {
	for name, l := range d.active {
		if l == loc {
			return name
		}
	}
	return fmt.Sprintf("#%d", loc)
}

func (d *fakeDevice) CreateVertexArray() uint32   { return d.gen("VertexArray") }
func (d *fakeDevice) DeleteVertexArray(id uint32) { d.record("DeleteVertexArray(%d)", id) }
func (d *fakeDevice) CreateBuffer() uint32        { return d.gen("Buffer") }
func (d *fakeDevice) DeleteBuffer(id uint32)      { d.record("DeleteBuffer(%d)", id) }
func (d *fakeDevice) BufferStorage(buffer uint32, size int, data unsafe.Pointer) {
	d.storage[buffer] = size
	d.record("BufferStorage(%d, %d)", buffer, size)
}
func (d *fakeDevice) VertexArrayVertexBuffer(vao, binding, buffer uint32, stride int32) {
	d.record("VertexArrayVertexBuffer(%d, %d, %d, %d)", vao, binding, buffer, stride)
}
func (d *fakeDevice) VertexArrayElementBuffer(vao, buffer uint32) {
	d.record("VertexArrayElementBuffer(%d, %d)", vao, buffer)
}
func (d *fakeDevice) VertexArrayAttrib(vao, binding uint32, attr core.VertexAttribute) {
	d.attribs = append(d.attribs, attr)
	d.record("VertexArrayAttrib(%d, %d, %s)", vao, binding, attr.Name)
}
func (d *fakeDevice) BindVertexArray(vao uint32) { d.record("BindVertexArray(%d)", vao) }

func (d *fakeDevice) CreateTexture() uint32   { return d.gen("Texture") }
func (d *fakeDevice) DeleteTexture(id uint32) { d.record("DeleteTexture(%d)", id) }
func (d *fakeDevice) TextureStorage(texture uint32, levels int32, format TextureFormat, width, height int32) {
	d.record("TextureStorage(%d, %d, %d, %d, %d)", texture, levels, format, width, height)
}
func (d *fakeDevice) TextureSubImage(texture uint32, width, height int32, pixels []byte) {
	d.record("TextureSubImage(%d, %d, %d, %d)", texture, width, height, len(pixels))
}
func (d *fakeDevice) GenerateMipmap(texture uint32) { d.record("GenerateMipmap(%d)", texture) }
func (d *fakeDevice) TextureSampler(texture uint32, p SamplerParams) {
	d.record("TextureSampler(%d, %d, %d, %d)", texture, p.Wrap, p.MinFilter, p.MagFilter)
}
func (d *fakeDevice) BindTextureUnit(unit, texture uint32) {
	d.record("BindTextureUnit(%d, %d)", unit, texture)
}

func (d *fakeDevice) CreateFramebuffer() uint32    { return d.gen("Framebuffer") }
func (d *fakeDevice) DeleteFramebuffer(id uint32)  { d.record("DeleteFramebuffer(%d)", id) }
func (d *fakeDevice) CreateRenderbuffer() uint32   { return d.gen("Renderbuffer") }
func (d *fakeDevice) DeleteRenderbuffer(id uint32) { d.record("DeleteRenderbuffer(%d)", id) }
func (d *fakeDevice) RenderbufferStorage(rbo uint32, width, height int32) {
	d.record("RenderbufferStorage(%d, %d, %d)", rbo, width, height)
}
func (d *fakeDevice) FramebufferColourTexture(fbo, texture uint32) {
	d.record("FramebufferColourTexture(%d, %d)", fbo, texture)
}
func (d *fakeDevice) FramebufferDepthStencil(fbo, rbo uint32) {
	d.record("FramebufferDepthStencil(%d, %d)", fbo, rbo)
}
func (d *fakeDevice) FramebufferStatus(fbo uint32) (uint32, bool) {
	d.record("FramebufferStatus(%d)", fbo)
	if d.incomplete {
		return 0x8CD6, false
	}
	return 0x8CD5, true
}
func (d *fakeDevice) BindFramebuffer(fbo uint32) { d.record("BindFramebuffer(%d)", fbo) }

func (d *fakeDevice) Viewport(width, height int32) { d.record("Viewport(%d, %d)", width, height) }
func (d *fakeDevice) Clear(colour mgl32.Vec4)      { d.record("Clear(%v)", colour) }
func (d *fakeDevice) Enable(c Capability)          { d.record("Enable(%d)", c) }
func (d *fakeDevice) Disable(c Capability)         { d.record("Disable(%d)", c) }
func (d *fakeDevice) SetPolygonMode(m PolygonMode) { d.record("SetPolygonMode(%d)", m) }
func (d *fakeDevice) DrawElements(count int32)     { d.record("DrawElements(%d)", count) }
func (d *fakeDevice) DrawArrays(first, count int32) {
	d.record("DrawArrays(%d, %d)", first, count)
}

func (d *fakeDevice) CreateShader(stage ShaderStage) uint32 { return d.gen("Shader") }
func (d *fakeDevice) CompileShader(shader uint32, source string) (bool, string) {
	d.record("CompileShader(%d)", shader)
	stage := StageVertex
	if strings.Contains(source, "fragment") {
		stage = StageFragment
	}
	if d.failCompile[stage] {
		return false, "0:1(1): error: syntax error\x00"
	}
	return true, ""
}
func (d *fakeDevice) DeleteShader(id uint32)      { d.record("DeleteShader(%d)", id) }
func (d *fakeDevice) CreateProgram() uint32       { return d.gen("Program") }
func (d *fakeDevice) AttachShader(prog, s uint32) { d.record("AttachShader(%d, %d)", prog, s) }
func (d *fakeDevice) LinkProgram(prog uint32) (bool, string) {
	d.record("LinkProgram(%d)", prog)
	if d.failLink {
		return false, "error: unresolved varying"
	}
	return true, ""
}
func (d *fakeDevice) ValidateProgram(prog uint32) (bool, string) {
	d.record("ValidateProgram(%d)", prog)
	if d.failValidate {
		return false, "sampler units overlap"
	}
	return true, ""
}
func (d *fakeDevice) DeleteProgram(id uint32) { d.record("DeleteProgram(%d)", id) }
func (d *fakeDevice) UseProgram(id uint32)    { d.record("UseProgram(%d)", id) }
func (d *fakeDevice) UniformLocation(prog uint32, name string) int32 {
	d.lookups[name]++
	d.record("UniformLocation(%d, %s)", prog, name)
	if loc, ok := d.active[name]; ok {
		return loc
	}
	return -1
}
func (d *fakeDevice) ProgramUniformInt(prog uint32, loc int32, v int32) {
	d.uniforms[d.nameOf(loc)] = v
	d.record("ProgramUniformInt(%s, %d)", d.nameOf(loc), v)
}
func (d *fakeDevice) ProgramUniformFloat(prog uint32, loc int32, v float32) {
	d.uniforms[d.nameOf(loc)] = v
	d.record("ProgramUniformFloat(%s, %g)", d.nameOf(loc), v)
}
func (d *fakeDevice) ProgramUniformVec3(prog uint32, loc int32, v mgl32.Vec3) {
	d.uniforms[d.nameOf(loc)] = v
	d.record("ProgramUniformVec3(%s, %v)", d.nameOf(loc), v)
}
func (d *fakeDevice) ProgramUniformMat4(prog uint32, loc int32, m mgl32.Mat4) {
	d.uniforms[d.nameOf(loc)] = m
	d.record("ProgramUniformMat4(%s)", d.nameOf(loc))
}

func (d *fakeDevice) ObjectLabel(kind ObjectKind, id uint32, label string) {
	d.labels[id] = label
	d.record("ObjectLabel(%s, %d, %s)", kind, id, label)
}
