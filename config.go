package glquad

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowConfig describes the window to open.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	Hidden bool   `toml:"hidden"` // offscreen capture
}

// Config holds the demo settings.
type Config struct {
	Window     WindowConfig `toml:"window"`
	ShaderPath string       `toml:"shader"`

	// ColorStep is how far the red channel moves each frame.
	ColorStep float32 `toml:"color_step"`

	// FatalGLErrors panics on the first failed GL call.
	FatalGLErrors bool `toml:"fatal_gl_errors"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Hello World",
			VSync:  true,
		},
		ShaderPath: "res/basic.shader",
		ColorStep:  0.05,
	}
}

// LoadConfig reads a TOML file. Keys it omits keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.ShaderPath == "":
		return errors.New("shader path is empty")
	case c.ColorStep <= 0 || c.ColorStep > 1:
		return fmt.Errorf("color_step %v must be in (0, 1]", c.ColorStep)
	}
	return nil
}
