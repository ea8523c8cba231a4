package renderer

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

// noCopy makes go vet's copylocks check flag accidental copies of a Program.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Program is a linked vertex+fragment program. Uniform locations are looked
// up once per name and cached for the program's lifetime; names the program
// does not have are cached as -1 and their uploads do nothing.
type Program struct {
	noCopy noCopy

	ID uint32

	dev       Device
	vertPath  string
	fragPath  string
	locations map[string]int32
}

// LoadProgram reads both source files before touching the GPU.
func LoadProgram(dev Device, vertPath, fragPath string) (*Program, error) {
	vertSrc, err := readShaderSource(vertPath)
	if err != nil {
		return nil, err
	}
	fragSrc, err := readShaderSource(fragPath)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(dev, vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertPath, fragPath, err)
	}
	p.vertPath = vertPath
	p.fragPath = fragPath
	return p, nil
}

// NewProgram compiles, links and validates a program from source.
func NewProgram(dev Device, vertSrc, fragSrc string) (*Program, error) {
	id, err := buildProgram(dev, vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:        id,
		dev:       dev,
		locations: make(map[string]int32),
	}, nil
}

func readShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ShaderError{Stage: path, Op: "read", Log: err.Error()}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", &ShaderError{Stage: path, Op: "read", Log: "empty source"}
	}
	return string(data), nil
}

func buildProgram(dev Device, vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(dev, StageVertex, vertSrc)
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(dev, StageFragment, fragSrc)
	if err != nil {
		dev.DeleteShader(vert)
		return 0, err
	}
	// Stages are only needed until link.
	defer dev.DeleteShader(vert)
	defer dev.DeleteShader(frag)

	prog := dev.CreateProgram()
	dev.AttachShader(prog, vert)
	dev.AttachShader(prog, frag)

	if ok, log := dev.LinkProgram(prog); !ok {
		dev.DeleteProgram(prog)
		return 0, &ShaderError{Stage: "program", Op: "link", Log: trimLog(log)}
	}
	if ok, log := dev.ValidateProgram(prog); !ok {
		dev.DeleteProgram(prog)
		return 0, &ShaderError{Stage: "program", Op: "validate", Log: trimLog(log)}
	}
	return prog, nil
}

func compileShader(dev Device, stage ShaderStage, src string) (uint32, error) {
	shader := dev.CreateShader(stage)
	if ok, log := dev.CompileShader(shader, src); !ok {
		dev.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage.String(), Op: "compile", Log: trimLog(log)}
	}
	return shader, nil
}

func trimLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

// Reload rebuilds the program from the files it was loaded from. On failure
// the current program stays in use and the error is returned.
func (p *Program) Reload() error {
	if p.vertPath == "" || p.fragPath == "" {
		return fmt.Errorf("program %d was not loaded from files", p.ID)
	}
	vertSrc, err := readShaderSource(p.vertPath)
	if err != nil {
		return err
	}
	fragSrc, err := readShaderSource(p.fragPath)
	if err != nil {
		return err
	}
	id, err := buildProgram(p.dev, vertSrc, fragSrc)
	if err != nil {
		return fmt.Errorf("%s + %s: %w", p.vertPath, p.fragPath, err)
	}

	p.dev.DeleteProgram(p.ID)
	p.ID = id
	p.locations = make(map[string]int32)
	return nil
}

// Sources returns the paths the program was loaded from, if any.
func (p *Program) Sources() (vert, frag string) {
	return p.vertPath, p.fragPath
}

func (p *Program) Bind() {
	p.dev.UseProgram(p.ID)
}

func (p *Program) Destroy() {
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
		p.ID = 0
	}
	p.locations = nil
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.ID, name)
	if loc < 0 {
		core.LogWarn("program %d has no active uniform %q", p.ID, name)
		loc = -1
	}
	if p.locations == nil {
		p.locations = make(map[string]int32)
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		p.dev.ProgramUniformInt(p.ID, loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		p.dev.ProgramUniformFloat(p.ID, loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		p.dev.ProgramUniformVec3(p.ID, loc, v)
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		p.dev.ProgramUniformMat4(p.ID, loc, m)
	}
}
