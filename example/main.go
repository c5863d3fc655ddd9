// Example opens a window and draws a quad whose colour pulses, with the
// frame rate shown in the title.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run from the repository root so res/ is found
//
// Flags:
//
//	-config file.toml   load settings (see glquad.Config)
//	-shader path        override the shader file
//	-v                  debug logging
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/glquad"
	"github.com/go-theft-auto/glquad/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file")
	shaderPath := flag.String("shader", "", "shader file (overrides config)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	glquad.SetVerbose(*verbose)

	cfg := glquad.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = glquad.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *shaderPath != "" {
		cfg.ShaderPath = *shaderPath
	}

	app := glquad.NewApp(opengl.NewGLFWPlatform(), cfg)
	return app.Run()
}
