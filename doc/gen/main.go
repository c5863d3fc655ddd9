// Command gen renders the quad in a hidden window at several points of its
// colour cycle and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/glquad"
	"github.com/go-theft-auto/glquad/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // window width; HiDPI framebuffers capture larger
	height int    // window height
	frames int    // frames to render; the last one is captured
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "quad_dark", width: 320, height: 240, frames: 1},
		{name: "quad_rising", width: 320, height: 240, frames: 10},
		{name: "quad_peak", width: 320, height: 240, frames: 20},
		{name: "quad_falling", width: 320, height: 240, frames: 30},
	}

	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	cfg := glquad.DefaultConfig()
	cfg.Window = glquad.WindowConfig{
		Width:  s.width,
		Height: s.height,
		Title:  "screenshot-gen",
		Hidden: true,
	}

	platform := &capturePlatform{GLFWPlatform: opengl.NewGLFWPlatform(), shot: s}
	if err := glquad.NewApp(platform, cfg).Run(); err != nil {
		return err
	}
	if platform.win == nil || platform.win.img == nil {
		return fmt.Errorf("no frame captured")
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, platform.win.img, &jpeg.Options{Quality: 90})
}

// capturePlatform hands out windows that close after the shot's frame
// count and keep the last frame.
type capturePlatform struct {
	*opengl.GLFWPlatform
	shot screenshot
	win  *captureWindow
}

func (p *capturePlatform) CreateWindow(cfg glquad.WindowConfig) (glquad.Window, error) {
	w, err := p.GLFWPlatform.CreateWindow(cfg)
	if err != nil {
		return nil, err
	}
	p.win = &captureWindow{Window: w, shot: p.shot}
	return p.win, nil
}

func (p *capturePlatform) MakeContextCurrent(w glquad.Window) (glquad.Device, error) {
	return p.GLFWPlatform.MakeContextCurrent(p.win.Window)
}

type captureWindow struct {
	glquad.Window
	shot   screenshot
	frames int
	img    *image.RGBA
}

func (w *captureWindow) ShouldClose() bool {
	return w.frames >= w.shot.frames || w.Window.ShouldClose()
}

func (w *captureWindow) SwapBuffers() {
	w.frames++
	if w.frames == w.shot.frames {
		w.img = opengl.ReadFramebuffer(opengl.CaptureSize(w.Window, w.shot.width, w.shot.height))
	}
	w.Window.SwapBuffers()
}
