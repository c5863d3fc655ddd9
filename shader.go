package glquad

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownUniform is returned for a uniform the linked program does not
// expose.
var ErrUnknownUniform = errors.New("glquad: unknown uniform")

// CompileError carries the driver's log for a shader that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the driver's log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// CompileShader compiles src as stage and returns the shader object.
// On a compile failure the object is deleted and a *CompileError is
// returned.
func CompileShader(g *GL, stage Stage, src string) (uint32, error) {
	if stage != StageVertex && stage != StageFragment {
		return 0, fmt.Errorf("compile shader: invalid stage %s", stage)
	}

	var id uint32
	if err := g.Call("glCreateShader", func() { id = g.CreateShader(stage) }); err != nil {
		deleteShader(g, id)
		return 0, fmt.Errorf("create %s shader: %w", stage, err)
	}
	if err := g.Call("glShaderSource", func() { g.ShaderSource(id, src) }); err != nil {
		deleteShader(g, id)
		return 0, fmt.Errorf("%s shader source: %w", stage, err)
	}
	if err := g.Call("glCompileShader", func() { g.CompileShader(id) }); err != nil {
		deleteShader(g, id)
		return 0, fmt.Errorf("compile %s shader: %w", stage, err)
	}

	var ok bool
	if err := g.Call("glGetShaderiv", func() { ok = g.ShaderCompileStatus(id) }); err != nil {
		deleteShader(g, id)
		return 0, fmt.Errorf("%s shader status: %w", stage, err)
	}
	if !ok {
		cerr := &CompileError{Stage: stage}
		_ = g.Call("glGetShaderInfoLog", func() { cerr.Log = g.ShaderInfoLog(id) })
		g.logger.Error("shader compile failed", "stage", stage, "log", cerr.Log)
		deleteShader(g, id)
		return 0, cerr
	}
	return id, nil
}

// deleteShader releases a stage object. A zero id is ignored.
func deleteShader(g *GL, id uint32) {
	if id == 0 {
		return
	}
	_ = g.Call("glDeleteShader", func() { g.DeleteShader(id) })
}

// Program owns a linked shader program.
// Use it by pointer only.
type Program struct {
	noCopy noCopy

	gl       *GL
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles both stages of src and links them.
// The stage objects are deleted once the program is linked. If either stage
// fails to compile, nothing is linked and the error is returned.
func NewProgram(g *GL, src ShaderSource) (*Program, error) {
	vs, err := CompileShader(g, StageVertex, src.Vertex)
	if err != nil {
		return nil, err
	}
	defer deleteShader(g, vs)

	fs, err := CompileShader(g, StageFragment, src.Fragment)
	if err != nil {
		return nil, err
	}
	defer deleteShader(g, fs)

	p := &Program{gl: g, uniforms: make(map[string]int32)}
	if err := g.Call("glCreateProgram", func() { p.handle = g.CreateProgram() }); err != nil {
		p.Delete()
		return nil, fmt.Errorf("create program: %w", err)
	}

	err = g.Call("glAttachShader", func() {
		g.AttachShader(p.handle, vs)
		g.AttachShader(p.handle, fs)
	})
	if err == nil {
		err = g.Call("glLinkProgram", func() { g.LinkProgram(p.handle) })
	}
	if err != nil {
		p.Delete()
		return nil, fmt.Errorf("link program: %w", err)
	}

	var linked bool
	if err := g.Call("glGetProgramiv", func() { linked = g.ProgramLinkStatus(p.handle) }); err != nil {
		p.Delete()
		return nil, fmt.Errorf("link status: %w", err)
	}
	if !linked {
		lerr := &LinkError{}
		_ = g.Call("glGetProgramInfoLog", func() { lerr.Log = g.ProgramInfoLog(p.handle) })
		g.logger.Error("program link failed", "log", lerr.Log)
		p.Delete()
		return nil, lerr
	}

	if err := g.Call("glValidateProgram", func() { g.ValidateProgram(p.handle) }); err != nil {
		p.Delete()
		return nil, fmt.Errorf("validate program: %w", err)
	}
	return p, nil
}

// Handle returns the GL name, or 0 after Delete.
func (p *Program) Handle() uint32 { return p.handle }

// Use installs the program for subsequent draws.
func (p *Program) Use() error {
	if p.handle == 0 {
		return ErrDeleted
	}
	return p.gl.Call("glUseProgram", func() { p.gl.UseProgram(p.handle) })
}

// UniformLocation looks up and caches the location of name.
func (p *Program) UniformLocation(name string) (int32, error) {
	if p.handle == 0 {
		return -1, ErrDeleted
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}

	loc := int32(-1)
	if err := p.gl.Call("glGetUniformLocation", func() { loc = p.gl.GetUniformLocation(p.handle, name) }); err != nil {
		return -1, err
	}
	if loc < 0 {
		return -1, fmt.Errorf("%w: %s", ErrUnknownUniform, name)
	}
	p.uniforms[name] = loc
	return loc, nil
}

// SetVec4 sets a vec4 uniform. The program must be in use.
func (p *Program) SetVec4(name string, v mgl32.Vec4) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	return p.gl.Call("glUniform4f", func() { p.gl.Uniform4f(loc, v) })
}

// Delete releases the program. Further calls are no-ops.
func (p *Program) Delete() {
	if p.handle == 0 {
		return
	}
	h := p.handle
	p.handle = 0
	_ = p.gl.Call("glDeleteProgram", func() { p.gl.DeleteProgram(h) })
}
