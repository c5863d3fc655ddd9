package glquad

import "github.com/go-gl/mathgl/mgl32"

// BufferTarget selects the binding point a buffer is bound to.
type BufferTarget uint32

// Buffer binding targets. Values match the OpenGL enums.
const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "GL_ARRAY_BUFFER"
	case ElementArrayBuffer:
		return "GL_ELEMENT_ARRAY_BUFFER"
	default:
		return "BufferTarget(unknown)"
	}
}

// BufferUsage is the usage hint passed with a buffer upload.
type BufferUsage uint32

// StaticDraw marks data that is uploaded once and drawn many times.
const StaticDraw BufferUsage = 0x88E4

// IndexType is the element type of an index buffer.
type IndexType uint32

// UnsignedInt is a 32-bit unsigned index.
const UnsignedInt IndexType = 0x1405

func (t IndexType) String() string {
	if t == UnsignedInt {
		return "GL_UNSIGNED_INT"
	}
	return "IndexType(unknown)"
}

// Device is the subset of the OpenGL API the demo needs.
//
// Every method maps onto one GL entry point and must be called on the thread
// owning the current context. Errors are not returned directly; they queue up
// and are read with GetError, the way the native API reports them.
type Device interface {
	GetError() ErrorCode
	Version() string

	GenBuffer() uint32
	DeleteBuffer(handle uint32)
	BindBuffer(target BufferTarget, handle uint32)
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	// GetBufferSubData copies len(dst) bytes from offset of the buffer bound
	// to target.
	GetBufferSubData(target BufferTarget, offset int, dst []byte)

	GenVertexArray() uint32
	DeleteVertexArray(handle uint32)
	BindVertexArray(handle uint32)
	EnableVertexAttribArray(slot uint32)
	// VertexAttribPointer describes a float attribute of size components.
	VertexAttribPointer(slot uint32, size, stride int32, offset uintptr)

	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	ValidateProgram(program uint32)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v mgl32.Vec4)

	Clear()
	// DrawElements draws count indices from the bound element buffer as
	// triangles.
	DrawElements(count int32, typ IndexType)
}

// Window is a native window with a current GL context.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	SetTitle(title string)
	// Time returns seconds on a monotonic clock.
	Time() float64
	Destroy()
}

// Platform creates windows and loads the GL function pointers for them.
type Platform interface {
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	// MakeContextCurrent makes the window's context current and loads GL.
	MakeContextCurrent(w Window) (Device, error)
	Terminate()
}
