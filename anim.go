package glquad

// Oscillator bounces a value between 0 and 1 in fixed steps.
type Oscillator struct {
	Value float32
	Step  float32

	// Falling is set while the value moves towards 0.
	Falling bool
}

// NewOscillator starts at 0 and rises by step each frame.
func NewOscillator(step float32) Oscillator {
	return Oscillator{Step: step}
}

// Next returns the oscillator advanced by one step. The value is clamped to
// [0,1] and the direction reverses on the step that reaches a bound.
func (o Oscillator) Next() Oscillator {
	if o.Falling {
		o.Value -= o.Step
	} else {
		o.Value += o.Step
	}

	switch {
	case o.Value >= 1:
		o.Value = 1
		o.Falling = true
	case o.Value <= 0:
		o.Value = 0
		o.Falling = false
	}
	return o
}
