package glquad

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorUniform is the uniform the quad's colour is written to.
const ColorUniform = "u_Color"

// Command is one side effect requested by Step.
type Command interface {
	command()
}

// ClearCmd clears the colour buffer.
type ClearCmd struct{}

// UniformCmd writes a vec4 uniform on the current program.
type UniformCmd struct {
	Name  string
	Value mgl32.Vec4
}

// DrawCmd issues one indexed draw from the bound element buffer.
type DrawCmd struct {
	Count int32
	Type  IndexType
}

// TitleCmd replaces the window title.
type TitleCmd struct {
	Title string
}

// SwapCmd presents the back buffer.
type SwapCmd struct{}

// PollCmd processes pending window events.
type PollCmd struct{}

func (ClearCmd) command()   {}
func (UniformCmd) command() {}
func (DrawCmd) command()    {}
func (TitleCmd) command()   {}
func (SwapCmd) command()    {}
func (PollCmd) command()    {}

// FrameState is everything the render loop carries between frames.
type FrameState struct {
	Color      Oscillator
	FPS        FPSCounter
	IndexCount int32
	Title      string
	Frames     uint64
	Done       bool
}

// NewFrameState returns the state before the first frame.
func NewFrameState(title string, indexCount int, colorStep float32) FrameState {
	return FrameState{
		Color:      NewOscillator(colorStep),
		IndexCount: int32(indexCount),
		Title:      title,
	}
}

// Step computes one frame. It has no side effects: the returned commands
// describe what the frame does. A close request ends the loop without
// drawing.
func Step(s FrameState, dt float64, closeRequested bool) (FrameState, []Command) {
	if s.Done || closeRequested {
		s.Done = true
		return s, nil
	}

	s.Color = s.Color.Next()
	cmds := []Command{
		ClearCmd{},
		UniformCmd{Name: ColorUniform, Value: quadColor(s.Color.Value)},
		DrawCmd{Count: s.IndexCount, Type: UnsignedInt},
	}

	var (
		fps    int
		report bool
	)
	s.FPS, fps, report = s.FPS.Tick(dt)
	if report {
		cmds = append(cmds, TitleCmd{Title: fpsTitle(s.Title, fps)})
	}

	s.Frames++
	return s, append(cmds, SwapCmd{}, PollCmd{})
}

func quadColor(r float32) mgl32.Vec4 {
	return mgl32.Vec4{r, 0.3, 0.8, 1.0}
}

func fpsTitle(base string, fps int) string {
	return fmt.Sprintf("%s | %d FPS", base, fps)
}

// Executor applies frame commands to a context and window.
type Executor struct {
	gl      *GL
	window  Window
	program *Program
}

// NewExecutor returns an executor drawing with program.
func NewExecutor(g *GL, w Window, program *Program) *Executor {
	return &Executor{gl: g, window: w, program: program}
}

// Execute runs cmds in order and stops at the first failure.
func (e *Executor) Execute(cmds []Command) error {
	for _, cmd := range cmds {
		if err := e.execute(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) execute(cmd Command) error {
	switch c := cmd.(type) {
	case ClearCmd:
		return e.gl.Call("glClear", e.gl.Clear)
	case UniformCmd:
		return e.program.SetVec4(c.Name, c.Value)
	case DrawCmd:
		return e.gl.Call("glDrawElements", func() { e.gl.DrawElements(c.Count, c.Type) })
	case TitleCmd:
		e.window.SetTitle(c.Title)
	case SwapCmd:
		e.window.SwapBuffers()
	case PollCmd:
		e.window.PollEvents()
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}
