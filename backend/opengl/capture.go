package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// FramebufferSizer is implemented by windows that know their framebuffer
// size in pixels.
type FramebufferSizer interface {
	FramebufferSize() (width, height int)
}

// CaptureSize returns the pixel size to read from w. Windows that do not
// report a usable framebuffer size fall back to width x height.
func CaptureSize(w any, width, height int) (int, int) {
	fs, ok := w.(FramebufferSizer)
	if !ok {
		return width, height
	}
	if fw, fh := fs.FramebufferSize(); fw > 0 && fh > 0 {
		return fw, fh
	}
	return width, height
}

// ReadFramebuffer reads the bound framebuffer into an image. width and
// height are in framebuffer pixels, see CaptureSize. Call it before
// swapping buffers.
func ReadFramebuffer(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	flipRows(pixels, width*4)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img
}

// flipRows reverses the row order of pixels in place. GL reads bottom row
// first; images store the top row first.
func flipRows(pixels []byte, rowLen int) {
	if rowLen <= 0 {
		return
	}
	rows := len(pixels) / rowLen
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}
