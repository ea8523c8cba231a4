package renderer

import (
	"github.com/google/uuid"
)

// Framebuffer is an offscreen colour target with a combined depth/stencil
// renderbuffer. The colour texture is what the screen pass samples.
type Framebuffer struct {
	FBO           uint32
	ColourTexture uint32
	DepthStencil  uint32
	Width         int32
	Height        int32

	dev Device
}

// NewFramebuffer creates a width×height target. Non-positive sizes are
// rejected before any GPU call; an incomplete framebuffer is torn down and
// reported with its status.
func NewFramebuffer(dev Device, width, height int32) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &FramebufferError{Width: width, Height: height}
	}

	fb := &Framebuffer{Width: width, Height: height, dev: dev}

	// Colour attachment, one level, sampled by the screen pass
	fb.ColourTexture = dev.CreateTexture()
	dev.TextureStorage(fb.ColourTexture, 1, FormatRGB8, width, height)
	dev.TextureSampler(fb.ColourTexture, SamplerParams{
		Wrap:      WrapClampToEdge,
		MinFilter: FilterLinear,
		MagFilter: FilterLinear,
	})

	fb.DepthStencil = dev.CreateRenderbuffer()
	dev.RenderbufferStorage(fb.DepthStencil, width, height)

	fb.FBO = dev.CreateFramebuffer()
	dev.FramebufferColourTexture(fb.FBO, fb.ColourTexture)
	dev.FramebufferDepthStencil(fb.FBO, fb.DepthStencil)

	status, complete := dev.FramebufferStatus(fb.FBO)
	if !complete {
		fb.Destroy()
		return nil, &FramebufferError{Width: width, Height: height, Status: status}
	}

	id := uuid.NewString()
	dev.ObjectLabel(ObjectFramebuffer, fb.FBO, "offscreen-"+id)
	dev.ObjectLabel(ObjectTexture, fb.ColourTexture, "offscreen-colour-"+id)
	dev.ObjectLabel(ObjectRenderbuffer, fb.DepthStencil, "offscreen-depth-stencil-"+id)
	return fb, nil
}

// Bind makes the framebuffer the draw target and sets the viewport to its size.
func (fb *Framebuffer) Bind() {
	fb.dev.BindFramebuffer(fb.FBO)
	fb.dev.Viewport(fb.Width, fb.Height)
}

// Destroy frees GPU resources.
func (fb *Framebuffer) Destroy() {
	if fb.FBO != 0 {
		fb.dev.DeleteFramebuffer(fb.FBO)
		fb.FBO = 0
	}
	if fb.ColourTexture != 0 {
		fb.dev.DeleteTexture(fb.ColourTexture)
		fb.ColourTexture = 0
	}
	if fb.DepthStencil != 0 {
		fb.dev.DeleteRenderbuffer(fb.DepthStencil)
		fb.DepthStencil = 0
	}
}
