package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrShader                = errors.New("shader program failed")
	ErrFramebufferIncomplete = errors.New("framebuffer incomplete")
)

// ShaderError reports which stage failed and at which step. Log carries the
// driver's info log for compile/link/validate failures, or the read error.
type ShaderError struct {
	Stage string // "vertex", "fragment", "program" or a source file path
	Op    string // "read", "compile", "link" or "validate"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s %s failed", e.Stage, e.Op)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Stage, e.Op, e.Log)
}

func (e *ShaderError) Unwrap() error { return ErrShader }

// FramebufferError is returned for bad dimensions (Status 0) or a
// non-complete status from the driver.
type FramebufferError struct {
	Width, Height int32
	Status        uint32
}

func (e *FramebufferError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("framebuffer %dx%d: invalid size", e.Width, e.Height)
	}
	return fmt.Sprintf("framebuffer %dx%d incomplete: status=0x%X", e.Width, e.Height, e.Status)
}

func (e *FramebufferError) Unwrap() error { return ErrFramebufferIncomplete }
