package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
	"gl-scene/renderer"
)

// Device implements renderer.Device with OpenGL 4.5+ direct state access.
type Device struct {
	Version  string
	Renderer string
	hasDebug bool
}

// NewDevice loads the GL entry points for the current context and, when the
// context was created with debug output, routes driver messages to the log.
// Must be called after the window's context is made current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	d := &Device{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	core.LogInfo("OpenGL %s on %s", d.Version, d.Renderer)

	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT != 0 {
		enableDebugOutput()
		d.hasDebug = true
	}
	return d, nil
}

// HasDebugOutput reports whether driver messages are being logged.
func (d *Device) HasDebugOutput() bool { return d.hasDebug }

// ── Vertex arrays and buffers ─────────────────────────────────────────────────

func (d *Device) CreateVertexArray() uint32 {
	var id uint32
	gl.CreateVertexArrays(1, &id)
	return id
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) CreateBuffer() uint32 {
	var id uint32
	gl.CreateBuffers(1, &id)
	return id
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) BufferStorage(buffer uint32, size int, data unsafe.Pointer) {
	gl.NamedBufferStorage(buffer, size, data, gl.DYNAMIC_STORAGE_BIT)
}

func (d *Device) VertexArrayVertexBuffer(vao, binding, buffer uint32, stride int32) {
	gl.VertexArrayVertexBuffer(vao, binding, buffer, 0, stride)
}

func (d *Device) VertexArrayElementBuffer(vao, buffer uint32) {
	gl.VertexArrayElementBuffer(vao, buffer)
}

func (d *Device) VertexArrayAttrib(vao, binding uint32, attr core.VertexAttribute) {
	gl.EnableVertexArrayAttrib(vao, attr.Location)
	gl.VertexArrayAttribFormat(vao, attr.Location, attr.Components, gl.FLOAT, false, attr.Offset)
	gl.VertexArrayAttribBinding(vao, attr.Location, binding)
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// ── Textures ──────────────────────────────────────────────────────────────────

func (d *Device) CreateTexture() uint32 {
	var id uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &id)
	return id
}

func (d *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (d *Device) TextureStorage(texture uint32, levels int32, format renderer.TextureFormat, width, height int32) {
	internal := uint32(gl.RGBA8)
	if format == renderer.FormatRGB8 {
		internal = gl.RGB8
	}
	gl.TextureStorage2D(texture, levels, internal, width, height)
}

func (d *Device) TextureSubImage(texture uint32, width, height int32, pixels []byte) {
	gl.TextureSubImage2D(texture, 0, 0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
}

func (d *Device) GenerateMipmap(texture uint32) {
	gl.GenerateTextureMipmap(texture)
}

func (d *Device) TextureSampler(texture uint32, p renderer.SamplerParams) {
	wrap := int32(gl.REPEAT)
	if p.Wrap == renderer.WrapClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TextureParameteri(texture, gl.TEXTURE_WRAP_S, wrap)
	gl.TextureParameteri(texture, gl.TEXTURE_WRAP_T, wrap)
	gl.TextureParameteri(texture, gl.TEXTURE_MIN_FILTER, filter(p.MinFilter))
	gl.TextureParameteri(texture, gl.TEXTURE_MAG_FILTER, filter(p.MagFilter))
}

func filter(f renderer.TextureFilter) int32 {
	switch f {
	case renderer.FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	case renderer.FilterNearest:
		return gl.NEAREST
	}
	return gl.LINEAR
}

func (d *Device) BindTextureUnit(unit, texture uint32) {
	gl.BindTextureUnit(unit, texture)
}

// ── Framebuffers ──────────────────────────────────────────────────────────────

func (d *Device) CreateFramebuffer() uint32 {
	var id uint32
	gl.CreateFramebuffers(1, &id)
	return id
}

func (d *Device) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

func (d *Device) CreateRenderbuffer() uint32 {
	var id uint32
	gl.CreateRenderbuffers(1, &id)
	return id
}

func (d *Device) DeleteRenderbuffer(rbo uint32) {
	gl.DeleteRenderbuffers(1, &rbo)
}

func (d *Device) RenderbufferStorage(rbo uint32, width, height int32) {
	gl.NamedRenderbufferStorage(rbo, gl.DEPTH24_STENCIL8, width, height)
}

func (d *Device) FramebufferColourTexture(fbo, texture uint32) {
	gl.NamedFramebufferTexture(fbo, gl.COLOR_ATTACHMENT0, texture, 0)
}

func (d *Device) FramebufferDepthStencil(fbo, rbo uint32) {
	gl.NamedFramebufferRenderbuffer(fbo, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, rbo)
}

func (d *Device) FramebufferStatus(fbo uint32) (uint32, bool) {
	status := gl.CheckNamedFramebufferStatus(fbo, gl.FRAMEBUFFER)
	return status, status == gl.FRAMEBUFFER_COMPLETE
}

func (d *Device) BindFramebuffer(fbo uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
}

// ── State and draws ───────────────────────────────────────────────────────────

func (d *Device) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *Device) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func capability(c renderer.Capability) uint32 {
	if c == renderer.CapCullFace {
		return gl.CULL_FACE
	}
	return gl.DEPTH_TEST
}

func (d *Device) Enable(c renderer.Capability) {
	gl.Enable(capability(c))
}

func (d *Device) Disable(c renderer.Capability) {
	gl.Disable(capability(c))
}

func (d *Device) SetPolygonMode(mode renderer.PolygonMode) {
	if mode == renderer.PolygonLine {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (d *Device) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

func (d *Device) DrawArrays(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// ── Shaders and programs ──────────────────────────────────────────────────────

func (d *Device) CreateShader(stage renderer.ShaderStage) uint32 {
	if stage == renderer.StageFragment {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return false, log
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)
	return programStatus(program, gl.LINK_STATUS)
}

func (d *Device) ValidateProgram(program uint32) (bool, string) {
	gl.ValidateProgram(program)
	return programStatus(program, gl.VALIDATE_STATUS)
}

func programStatus(program, pname uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, pname, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return false, log
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) ProgramUniformInt(program uint32, location int32, v int32) {
	gl.ProgramUniform1i(program, location, v)
}

func (d *Device) ProgramUniformFloat(program uint32, location int32, v float32) {
	gl.ProgramUniform1f(program, location, v)
}

func (d *Device) ProgramUniformVec3(program uint32, location int32, v mgl32.Vec3) {
	gl.ProgramUniform3f(program, location, v[0], v[1], v[2])
}

func (d *Device) ProgramUniformMat4(program uint32, location int32, m mgl32.Mat4) {
	gl.ProgramUniformMatrix4fv(program, location, 1, false, &m[0])
}

// ── Labels ────────────────────────────────────────────────────────────────────

func (d *Device) ObjectLabel(kind renderer.ObjectKind, id uint32, label string) {
	if !d.hasDebug || id == 0 || label == "" {
		return
	}
	var identifier uint32
	switch kind {
	case renderer.ObjectBuffer:
		identifier = gl.BUFFER
	case renderer.ObjectVertexArray:
		identifier = gl.VERTEX_ARRAY
	case renderer.ObjectTexture:
		identifier = gl.TEXTURE
	case renderer.ObjectFramebuffer:
		identifier = gl.FRAMEBUFFER
	case renderer.ObjectRenderbuffer:
		identifier = gl.RENDERBUFFER
	case renderer.ObjectProgram:
		identifier = gl.PROGRAM
	case renderer.ObjectShader:
		identifier = gl.SHADER
	default:
		return
	}
	cstr, free := gl.Strs(label + "\x00")
	defer free()
	gl.ObjectLabel(identifier, id, int32(len(label)), *cstr)
}

var _ renderer.Device = (*Device)(nil)
