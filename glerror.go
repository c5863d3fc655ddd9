package glquad

import (
	"fmt"
	"log/slog"
	"runtime"
)

// ErrorCode is a value read from the GL error queue.
type ErrorCode uint32

// GL error codes.
const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
	TableTooLarge               ErrorCode = 0x8031
)

// String returns the symbolic GL name of the code.
func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case TableTooLarge:
		return "GL_TABLE_TOO_LARGE"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("ErrorCode(0x%04X)", uint32(c))
	}
}

// CallError reports the first error code raised by a checked GL call.
type CallError struct {
	Code ErrorCode
	Call string
	File string
	Line int
}

func (e *CallError) Error() string {
	return fmt.Sprintf("OPENGL ERROR %s in function %s %s:%d", e.Code, e.Call, e.File, e.Line)
}

// maxDrain bounds how many codes are read when emptying the queue. A lost
// context may report errors forever.
const maxDrain = 64

// ClearErrors empties the GL error queue.
func ClearErrors(dev Device) {
	for i := 0; i < maxDrain; i++ {
		if dev.GetError() == NoError {
			return
		}
	}
}

// Check clears the error queue, runs fn and inspects the queue again.
// If fn raised errors, the first one is returned as a *CallError carrying
// the caller's file and line. Check never aborts the process.
func Check(dev Device, call string, fn func()) error {
	return check(dev, call, fn)
}

// check must be called directly from an exported wrapper so the caller
// frame is two levels up.
func check(dev Device, call string, fn func()) error {
	ClearErrors(dev)
	fn()
	code := dev.GetError()
	if code == NoError {
		return nil
	}
	ClearErrors(dev)

	_, file, line, _ := runtime.Caller(2)
	return &CallError{Code: code, Call: call, File: file, Line: line}
}

// GL wraps a Device with the error-checking policy used by the resource
// wrappers.
type GL struct {
	Device

	fatal  bool
	logger *slog.Logger
}

// GLOption configures a GL.
type GLOption func(*GL)

// WithFatalErrors makes every failed call panic with its *CallError after
// it has been logged.
func WithFatalErrors(fatal bool) GLOption {
	return func(g *GL) { g.fatal = fatal }
}

// WithGLLogger sets the logger failed calls are reported to.
func WithGLLogger(l *slog.Logger) GLOption {
	return func(g *GL) { g.logger = l }
}

// NewGL wraps dev.
func NewGL(dev Device, opts ...GLOption) *GL {
	g := &GL{Device: dev, logger: logger}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Call runs fn under Check. Failures are logged, and panic when fatal
// errors are enabled.
func (g *GL) Call(call string, fn func()) error {
	err := check(g.Device, call, fn)
	if err == nil {
		return nil
	}
	g.logger.Error("gl call failed", "err", err)
	if g.fatal {
		panic(err)
	}
	return err
}
