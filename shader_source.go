package glquad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stage is one compiled unit of a shader program.
type Stage int

const (
	// StageNone means no stage marker has been read yet.
	StageNone Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// stageMarker starts a new section of a shader file.
const stageMarker = "#shader"

var (
	// ErrNoStage is returned for content that appears before any marker.
	ErrNoStage = errors.New("shader source: content before a #shader marker")
	// ErrUnknownStage is returned for a marker naming neither stage.
	ErrUnknownStage = errors.New("shader source: marker names no known stage")
	// ErrMissingStage is returned when a stage has no source.
	ErrMissingStage = errors.New("shader source: missing stage")
)

// ShaderSource is the text of both stages of a program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Source returns the text for stage.
func (s ShaderSource) Source(stage Stage) string {
	switch stage {
	case StageVertex:
		return s.Vertex
	case StageFragment:
		return s.Fragment
	default:
		return ""
	}
}

// ParseShaderSource splits a dual-section shader file.
//
// A line containing "#shader" switches the current stage to vertex or
// fragment depending on which word it contains. Every other line is
// appended to the current stage. Blank lines before the first marker are
// skipped; any other content there is rejected.
func ParseShaderSource(r io.Reader) (ShaderSource, error) {
	var (
		sections [3]strings.Builder
		current  = StageNone
		lineNo   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if strings.Contains(line, stageMarker) {
			switch {
			case strings.Contains(line, "vertex"):
				current = StageVertex
			case strings.Contains(line, "fragment"):
				current = StageFragment
			default:
				return ShaderSource{}, fmt.Errorf("line %d %q: %w", lineNo, line, ErrUnknownStage)
			}
			continue
		}

		if current == StageNone {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return ShaderSource{}, fmt.Errorf("line %d: %w", lineNo, ErrNoStage)
		}

		sections[current].WriteString(line)
		sections[current].WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return ShaderSource{}, fmt.Errorf("read shader source: %w", err)
	}

	src := ShaderSource{
		Vertex:   sections[StageVertex].String(),
		Fragment: sections[StageFragment].String(),
	}
	for _, stage := range []Stage{StageVertex, StageFragment} {
		if strings.TrimSpace(src.Source(stage)) == "" {
			return ShaderSource{}, fmt.Errorf("%w: %s", ErrMissingStage, stage)
		}
	}
	return src, nil
}

// LoadShaderSource reads and parses the shader file at path.
func LoadShaderSource(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("open shader: %w", err)
	}
	defer f.Close()

	src, err := ParseShaderSource(f)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
