package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glquad"
)

// GLFWWindow adapts a GLFW window to glquad.Window.
type GLFWWindow struct {
	window *glfw.Window
}

var (
	_ glquad.Window    = (*GLFWWindow)(nil)
	_ FramebufferSizer = (*GLFWWindow)(nil)
)

// NewGLFWWindow wraps window. Escape requests the window to close.
func NewGLFWWindow(window *glfw.Window) *GLFWWindow {
	w := &GLFWWindow{window: window}
	window.SetKeyCallback(w.keyCallback)
	return w
}

// Window returns the underlying GLFW window.
func (w *GLFWWindow) Window() *glfw.Window { return w.window }

func (w *GLFWWindow) ShouldClose() bool     { return w.window.ShouldClose() }
func (w *GLFWWindow) SwapBuffers()          { w.window.SwapBuffers() }
func (w *GLFWWindow) PollEvents()           { glfw.PollEvents() }
func (w *GLFWWindow) SetTitle(title string) { w.window.SetTitle(title) }
func (w *GLFWWindow) Time() float64         { return glfw.GetTime() }
func (w *GLFWWindow) Destroy()              { w.window.Destroy() }

// FramebufferSize returns the framebuffer size in pixels. It differs from
// the window size on HiDPI displays.
func (w *GLFWWindow) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

func (w *GLFWWindow) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}
}

// GLFWPlatform creates GLFW windows with an OpenGL 4.1 core context.
// All methods must be called from the main thread.
type GLFWPlatform struct {
	vsync bool
}

var _ glquad.Platform = (*GLFWPlatform)(nil)

// NewGLFWPlatform returns an uninitialized platform.
func NewGLFWPlatform() *GLFWPlatform {
	return &GLFWPlatform{}
}

// Init initializes GLFW.
func (p *GLFWPlatform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// CreateWindow opens a window with a 4.1 core forward-compatible context.
func (p *GLFWPlatform) CreateWindow(cfg glquad.WindowConfig) (glquad.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	p.vsync = cfg.VSync
	return NewGLFWWindow(window), nil
}

// MakeContextCurrent makes the window's context current and loads the GL
// function pointers.
func (p *GLFWPlatform) MakeContextCurrent(w glquad.Window) (glquad.Device, error) {
	gw, ok := w.(*GLFWWindow)
	if !ok {
		return nil, errors.New("opengl: window was not created by GLFWPlatform")
	}
	gw.window.MakeContextCurrent()
	if p.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Device{}, nil
}

// Terminate shuts GLFW down. Windows still open are destroyed.
func (p *GLFWPlatform) Terminate() { glfw.Terminate() }
