// Package opengl implements the glquad capability interfaces with
// OpenGL 4.1 core and GLFW.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glquad"
)

// Device forwards glquad.Device calls to the current GL context.
// Create it with GLFWPlatform.MakeContextCurrent, after gl.Init.
type Device struct{}

var _ glquad.Device = (*Device)(nil)

// GetError pops the oldest code from the GL error queue.
func (d *Device) GetError() glquad.ErrorCode { return glquad.ErrorCode(gl.GetError()) }

// Version returns the GL_VERSION string of the context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// GenBuffer allocates one buffer name.
func (d *Device) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

// DeleteBuffer frees a buffer name.
func (d *Device) DeleteBuffer(handle uint32) { gl.DeleteBuffers(1, &handle) }

// BindBuffer binds handle to target; 0 unbinds.
func (d *Device) BindBuffer(target glquad.BufferTarget, handle uint32) {
	gl.BindBuffer(uint32(target), handle)
}

// BufferData uploads data to the buffer bound on target.
func (d *Device) BufferData(target glquad.BufferTarget, data []byte, usage glquad.BufferUsage) {
	gl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

// GetBufferSubData copies the bound buffer into dst, starting at offset.
func (d *Device) GetBufferSubData(target glquad.BufferTarget, offset int, dst []byte) {
	gl.GetBufferSubData(uint32(target), offset, len(dst), ptr(dst))
}

// GenVertexArray allocates one vertex array name.
func (d *Device) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

// DeleteVertexArray frees a vertex array name.
func (d *Device) DeleteVertexArray(handle uint32) { gl.DeleteVertexArrays(1, &handle) }

// BindVertexArray binds a vertex array; 0 unbinds.
func (d *Device) BindVertexArray(handle uint32) { gl.BindVertexArray(handle) }

// EnableVertexAttribArray enables attribute slot on the bound vertex array.
func (d *Device) EnableVertexAttribArray(slot uint32) { gl.EnableVertexAttribArray(slot) }

// VertexAttribPointer describes slot as float vectors read from the bound array buffer.
func (d *Device) VertexAttribPointer(slot uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(slot, size, gl.FLOAT, false, stride, offset)
}

// CreateShader creates a shader object for stage. It returns 0 for StageNone.
func (d *Device) CreateShader(stage glquad.Stage) uint32 {
	switch stage {
	case glquad.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case glquad.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

// ShaderSource replaces the source of shader.
func (d *Device) ShaderSource(shader uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader compiles shader.
func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

// ShaderCompileStatus reports whether the last compile succeeded.
func (d *Device) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the compile log of shader.
func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// DeleteShader flags shader for deletion.
func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

// CreateProgram creates an empty program object.
func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

// AttachShader attaches shader to program.
func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

// LinkProgram links the attached stages.
func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

// ProgramLinkStatus reports whether the last link succeeded.
func (d *Device) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the link log of program.
func (d *Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// ValidateProgram checks program against the current state.
func (d *Device) ValidateProgram(program uint32) { gl.ValidateProgram(program) }

// UseProgram installs program; 0 uninstalls.
func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

// DeleteProgram flags program for deletion.
func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

// GetUniformLocation returns the location of name, or -1.
func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform4f sets a vec4 uniform on the current program.
func (d *Device) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

// Clear clears the color buffer.
func (d *Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

// DrawElements draws count indices from the bound element buffer as triangles.
func (d *Device) DrawElements(count int32, typ glquad.IndexType) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, uint32(typ), 0)
}

// ptr returns a pointer to the first byte of b, or nil for an empty slice.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(b)
}
