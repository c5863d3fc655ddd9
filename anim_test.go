package glquad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/glquad"
)

func TestOscillatorStaysInRange(t *testing.T) {
	for _, step := range []float32{0.05, 0.3, 0.7, 1} {
		o := glquad.NewOscillator(step)
		for i := 0; i < 1000; i++ {
			prev := o
			o = o.Next()

			assert.GreaterOrEqual(t, o.Value, float32(0))
			assert.LessOrEqual(t, o.Value, float32(1))

			if o.Falling != prev.Falling {
				if o.Falling {
					assert.Equal(t, float32(1), o.Value, "turns down only at 1")
				} else {
					assert.Equal(t, float32(0), o.Value, "turns up only at 0")
				}
			}
		}
	}
}

func TestOscillatorBounces(t *testing.T) {
	o := glquad.NewOscillator(0.25)

	var values []float32
	for i := 0; i < 9; i++ {
		o = o.Next()
		values = append(values, o.Value)
	}
	assert.Equal(t, []float32{0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0.25}, values)
}

func TestFPSCounter(t *testing.T) {
	var c glquad.FPSCounter

	var (
		fps    int
		report bool
	)
	for i := 0; i < 3; i++ {
		c, fps, report = c.Tick(0.25)
		assert.False(t, report)
		assert.Zero(t, fps)
	}
	c, fps, report = c.Tick(0.25)
	assert.True(t, report)
	assert.Equal(t, 4, fps)
	assert.Equal(t, glquad.FPSCounter{}, c, "reset after reporting")

	c, _, report = c.Tick(2)
	assert.True(t, report, "a single slow frame still reports")
	assert.Equal(t, glquad.FPSCounter{}, c)
}
