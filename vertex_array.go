package glquad

import "fmt"

// VertexArray owns a vertex array object, which records the attribute
// layout and the buffers it reads from. The core profile refuses to draw
// without one.
type VertexArray struct {
	noCopy noCopy

	gl      *GL
	handle  uint32
	enabled []uint32
}

// NewVertexArray creates a vertex array object and binds it.
func NewVertexArray(g *GL) (*VertexArray, error) {
	va := &VertexArray{gl: g}
	if err := g.Call("glGenVertexArrays", func() { va.handle = g.GenVertexArray() }); err != nil {
		va.Delete()
		return nil, fmt.Errorf("vertex array: %w", err)
	}
	if err := va.Bind(); err != nil {
		va.Delete()
		return nil, fmt.Errorf("vertex array: %w", err)
	}
	return va, nil
}

// Bind makes the vertex array current.
func (va *VertexArray) Bind() error {
	if va.handle == 0 {
		return ErrDeleted
	}
	return va.gl.Call("glBindVertexArray", func() { va.gl.BindVertexArray(va.handle) })
}

// Unbind clears the vertex array binding.
func (va *VertexArray) Unbind() error {
	if va.handle == 0 {
		return ErrDeleted
	}
	return va.gl.Call("glBindVertexArray", func() { va.gl.BindVertexArray(0) })
}

// AddBuffer binds vb and points attribute slot at it as tightly packed
// float vectors of size components.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, slot uint32, size int32) error {
	if err := va.Bind(); err != nil {
		return err
	}
	if err := vb.Bind(); err != nil {
		return err
	}
	if err := va.gl.Call("glEnableVertexAttribArray", func() { va.gl.EnableVertexAttribArray(slot) }); err != nil {
		return fmt.Errorf("enable attribute %d: %w", slot, err)
	}
	stride := size * 4
	if err := va.gl.Call("glVertexAttribPointer", func() { va.gl.VertexAttribPointer(slot, size, stride, 0) }); err != nil {
		return fmt.Errorf("attribute %d layout: %w", slot, err)
	}
	va.enabled = append(va.enabled, slot)
	return nil
}

// Enabled returns the attribute slots enabled through AddBuffer.
func (va *VertexArray) Enabled() []uint32 {
	return append([]uint32(nil), va.enabled...)
}

// Delete releases the vertex array. Further calls are no-ops.
func (va *VertexArray) Delete() {
	if va.handle == 0 {
		return
	}
	h := va.handle
	va.handle = 0
	_ = va.gl.Call("glDeleteVertexArrays", func() { va.gl.DeleteVertexArray(h) })
}
