package glquad

import (
	"fmt"
	"log/slog"
)

// AppState is the lifecycle stage of an App.
type AppState int

const (
	StateUninitialized AppState = iota
	StateWindowCreated
	StateContextCurrent
	StateResourcesLoaded
	StateRendering
	StateTerminated
)

func (s AppState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateWindowCreated:
		return "window-created"
	case StateContextCurrent:
		return "context-current"
	case StateResourcesLoaded:
		return "resources-loaded"
	case StateRendering:
		return "rendering"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("AppState(%d)", int(s))
	}
}

// QuadVertices are the 2D corners of the demo quad.
var QuadVertices = []float32{
	0, 1,
	-1, 0,
	0, 0,
	-1, 1,
}

// QuadIndices split the quad into two triangles.
var QuadIndices = []uint32{
	1, 2, 0,
	1, 0, 3,
}

// App opens a window and draws the quad until the window is closed.
type App struct {
	platform Platform
	cfg      Config
	logger   *slog.Logger
	source   *ShaderSource
	state    AppState
	frames   uint64
}

// AppOption configures an App.
type AppOption func(*App)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// WithShaderSource uses src instead of reading cfg.ShaderPath.
func WithShaderSource(src ShaderSource) AppOption {
	return func(a *App) { a.source = &src }
}

// NewApp creates an App that has not touched the platform yet.
func NewApp(platform Platform, cfg Config, opts ...AppOption) *App {
	a := &App{
		platform: platform,
		cfg:      cfg,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the last state the App reached.
func (a *App) State() AppState { return a.state }

// Frames returns the number of frames drawn.
func (a *App) Frames() uint64 { return a.frames }

// resources are the GL objects owned by a running App.
type resources struct {
	program *Program
	vao     *VertexArray
	vbo     *VertexBuffer
	ibo     *IndexBuffer
}

func (r *resources) delete() {
	if r.ibo != nil {
		r.ibo.Delete()
	}
	if r.vbo != nil {
		r.vbo.Delete()
	}
	if r.vao != nil {
		r.vao.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Run initializes the platform, loads the quad and renders until the window
// asks to close. Every failure before the loop returns without entering
// later states.
func (a *App) Run() error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := a.platform.Init(); err != nil {
		return fmt.Errorf("platform init: %w", err)
	}
	defer a.platform.Terminate()

	window, err := a.platform.CreateWindow(a.cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	a.state = StateWindowCreated

	dev, err := a.platform.MakeContextCurrent(window)
	if err != nil {
		return fmt.Errorf("load gl: %w", err)
	}
	a.state = StateContextCurrent

	g := NewGL(dev, WithGLLogger(a.logger), WithFatalErrors(a.cfg.FatalGLErrors))
	a.logger.Info("opengl context ready", "version", dev.Version())

	res, err := a.load(g)
	defer res.delete()
	if err != nil {
		return err
	}
	a.state = StateResourcesLoaded

	if err := a.loop(g, window, res); err != nil {
		return err
	}
	a.state = StateTerminated
	return nil
}

func (a *App) load(g *GL) (*resources, error) {
	res := &resources{}

	src := a.source
	if src == nil {
		loaded, err := LoadShaderSource(a.cfg.ShaderPath)
		if err != nil {
			return res, err
		}
		src = &loaded
	}

	var err error
	if res.program, err = NewProgram(g, *src); err != nil {
		return res, fmt.Errorf("shader program: %w", err)
	}
	if res.vao, err = NewVertexArray(g); err != nil {
		return res, err
	}
	if res.vbo, err = NewVertexBuffer(g, QuadVertices); err != nil {
		return res, err
	}
	if err = res.vao.AddBuffer(res.vbo, 0, 2); err != nil {
		return res, fmt.Errorf("vertex layout: %w", err)
	}
	if res.ibo, err = NewIndexBuffer(g, QuadIndices); err != nil {
		return res, err
	}
	if err = res.program.Use(); err != nil {
		return res, fmt.Errorf("use program: %w", err)
	}

	a.logger.Debug("resources loaded",
		"program", res.program.Handle(),
		"vbo", res.vbo.Handle(),
		"ibo", res.ibo.Handle(),
		"indices", res.ibo.Count())
	return res, nil
}

func (a *App) loop(g *GL, window Window, res *resources) error {
	a.state = StateRendering
	exec := NewExecutor(g, window, res.program)
	state := NewFrameState(a.cfg.Window.Title, res.ibo.Count(), a.cfg.ColorStep)

	last := window.Time()
	for {
		now := window.Time()
		dt := now - last
		last = now

		var cmds []Command
		state, cmds = Step(state, dt, window.ShouldClose())
		if state.Done {
			break
		}
		if err := exec.Execute(cmds); err != nil {
			return fmt.Errorf("frame %d: %w", state.Frames, err)
		}
		a.frames = state.Frames
	}

	a.logger.Debug("window closed", "frames", a.frames)
	return nil
}
