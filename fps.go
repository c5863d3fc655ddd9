package glquad

// fpsInterval is how often, in seconds, the frame rate is reported.
const fpsInterval = 1.0

// FPSCounter counts frames and reports the total once per second.
type FPSCounter struct {
	Frames  int
	Elapsed float64
}

// Tick records one frame that took dt seconds. Once a second has
// accumulated it returns the frame count and resets.
func (c FPSCounter) Tick(dt float64) (FPSCounter, int, bool) {
	c.Frames++
	c.Elapsed += dt
	if c.Elapsed < fpsInterval {
		return c, 0, false
	}
	n := c.Frames
	return FPSCounter{}, n, true
}
