package renderer

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

type Capability int

const (
	CapDepthTest Capability = iota
	CapCullFace
)

type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
)

// ObjectKind selects the label namespace for ObjectLabel.
type ObjectKind int

const (
	ObjectBuffer ObjectKind = iota
	ObjectVertexArray
	ObjectTexture
	ObjectFramebuffer
	ObjectRenderbuffer
	ObjectProgram
	ObjectShader
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectBuffer:
		return "buffer"
	case ObjectVertexArray:
		return "vertex array"
	case ObjectTexture:
		return "texture"
	case ObjectFramebuffer:
		return "framebuffer"
	case ObjectRenderbuffer:
		return "renderbuffer"
	case ObjectProgram:
		return "program"
	case ObjectShader:
		return "shader"
	}
	return "object"
}

// TextureFormat is the sized internal format of immutable texture storage.
type TextureFormat int

const (
	FormatRGBA8 TextureFormat = iota
	FormatRGB8
)

type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
)

type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterLinearMipmapLinear
	FilterNearest
)

// SamplerParams are the per-texture sampling parameters.
type SamplerParams struct {
	Wrap      TextureWrap
	MinFilter TextureFilter
	MagFilter TextureFilter
}

// Device is the subset of the GPU API the renderer uses. Every object is
// created and modified by name without binding (direct state access). GPU
// object creation is assumed to succeed; the driver reports problems through
// its debug output.
//
// All methods must be called on the thread that owns the context.
type Device interface {
	CreateVertexArray() uint32
	DeleteVertexArray(vao uint32)
	CreateBuffer() uint32
	DeleteBuffer(buffer uint32)
	// BufferStorage allocates immutable storage of size bytes initialised
	// from data. The contents stay writable from the CPU.
	BufferStorage(buffer uint32, size int, data unsafe.Pointer)
	VertexArrayVertexBuffer(vao, binding, buffer uint32, stride int32)
	VertexArrayElementBuffer(vao, buffer uint32)
	VertexArrayAttrib(vao, binding uint32, attr core.VertexAttribute)
	BindVertexArray(vao uint32)

	CreateTexture() uint32
	DeleteTexture(texture uint32)
	TextureStorage(texture uint32, levels int32, format TextureFormat, width, height int32)
	TextureSubImage(texture uint32, width, height int32, pixels []byte)
	GenerateMipmap(texture uint32)
	TextureSampler(texture uint32, params SamplerParams)
	BindTextureUnit(unit, texture uint32)

	CreateFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	CreateRenderbuffer() uint32
	DeleteRenderbuffer(rbo uint32)
	// RenderbufferStorage allocates a combined 24-bit depth, 8-bit stencil buffer.
	RenderbufferStorage(rbo uint32, width, height int32)
	FramebufferColourTexture(fbo, texture uint32)
	FramebufferDepthStencil(fbo, rbo uint32)
	// FramebufferStatus returns the completeness status; complete reports
	// whether it is the complete value.
	FramebufferStatus(fbo uint32) (status uint32, complete bool)
	// BindFramebuffer binds fbo for drawing; 0 is the window.
	BindFramebuffer(fbo uint32)

	Viewport(width, height int32)
	// Clear clears colour, depth and stencil of the bound framebuffer.
	Clear(colour mgl32.Vec4)
	Enable(c Capability)
	Disable(c Capability)
	SetPolygonMode(mode PolygonMode)
	DrawElements(count int32)
	DrawArrays(first, count int32)

	CreateShader(stage ShaderStage) uint32
	// CompileShader returns the info log when compilation fails.
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, log string)
	ValidateProgram(program uint32) (ok bool, log string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	ProgramUniformInt(program uint32, location int32, v int32)
	ProgramUniformFloat(program uint32, location int32, v float32)
	ProgramUniformVec3(program uint32, location int32, v mgl32.Vec3)
	ProgramUniformMat4(program uint32, location int32, m mgl32.Mat4)

	ObjectLabel(kind ObjectKind, id uint32, label string)
}
