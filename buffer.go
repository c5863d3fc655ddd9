package glquad

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrDeleted is returned when a resource is used after Delete.
var ErrDeleted = errors.New("glquad: resource already deleted")

// noCopy makes `go vet` report copies of the struct that embeds it.
// Wrappers own their handle; a copy would delete it twice.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// buffer owns one GL buffer object.
type buffer struct {
	noCopy noCopy

	gl     *GL
	target BufferTarget
	handle uint32
	size   int
}

func newBuffer(g *GL, target BufferTarget, data []byte) (*buffer, error) {
	b := &buffer{gl: g, target: target, size: len(data)}

	if err := g.Call("glGenBuffers", func() { b.handle = g.GenBuffer() }); err != nil {
		b.release()
		return nil, fmt.Errorf("gen buffer: %w", err)
	}
	if err := b.bind(); err != nil {
		b.release()
		return nil, err
	}
	if err := g.Call("glBufferData", func() { g.BufferData(target, data, StaticDraw) }); err != nil {
		b.release()
		return nil, fmt.Errorf("upload %d bytes to %s: %w", len(data), target, err)
	}
	return b, nil
}

func (b *buffer) bind() error {
	if b.handle == 0 {
		return ErrDeleted
	}
	b.gl.logger.Debug("bind buffer", "target", b.target, "handle", b.handle)
	return b.gl.Call("glBindBuffer", func() { b.gl.BindBuffer(b.target, b.handle) })
}

func (b *buffer) unbind() error {
	if b.handle == 0 {
		return ErrDeleted
	}
	return b.gl.Call("glBindBuffer", func() { b.gl.BindBuffer(b.target, 0) })
}

func (b *buffer) readBack() ([]byte, error) {
	if err := b.bind(); err != nil {
		return nil, err
	}
	out := make([]byte, b.size)
	if err := b.gl.Call("glGetBufferSubData", func() { b.gl.GetBufferSubData(b.target, 0, out) }); err != nil {
		return nil, err
	}
	return out, nil
}

// release deletes the handle once and zeroes it.
func (b *buffer) release() {
	if b.handle == 0 {
		return
	}
	h := b.handle
	b.handle = 0
	_ = b.gl.Call("glDeleteBuffers", func() { b.gl.DeleteBuffer(h) })
}

// VertexBuffer owns a GL_ARRAY_BUFFER holding vertex data.
// Use it by pointer only.
type VertexBuffer struct {
	buf *buffer
}

// NewVertexBuffer uploads vertices into a new static buffer. The buffer is
// left bound.
func NewVertexBuffer(g *GL, vertices []float32) (*VertexBuffer, error) {
	b, err := newBuffer(g, ArrayBuffer, bytesOf(vertices))
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	return &VertexBuffer{buf: b}, nil
}

// Bind selects the buffer on GL_ARRAY_BUFFER.
func (vb *VertexBuffer) Bind() error { return vb.buf.bind() }

// Unbind clears the GL_ARRAY_BUFFER binding.
func (vb *VertexBuffer) Unbind() error { return vb.buf.unbind() }

// Handle returns the GL name, or 0 after Delete.
func (vb *VertexBuffer) Handle() uint32 { return vb.buf.handle }

// Size returns the number of bytes uploaded.
func (vb *VertexBuffer) Size() int { return vb.buf.size }

// ReadBack returns the buffer contents as stored on the GPU.
func (vb *VertexBuffer) ReadBack() ([]byte, error) { return vb.buf.readBack() }

// Delete releases the GL buffer. Further calls are no-ops.
func (vb *VertexBuffer) Delete() { vb.buf.release() }

// IndexBuffer owns a GL_ELEMENT_ARRAY_BUFFER of 32-bit indices.
// Use it by pointer only.
type IndexBuffer struct {
	buf   *buffer
	count int
}

// NewIndexBuffer uploads indices into a new static buffer. The buffer is
// left bound.
func NewIndexBuffer(g *GL, indices []uint32) (*IndexBuffer, error) {
	b, err := newBuffer(g, ElementArrayBuffer, bytesOf(indices))
	if err != nil {
		return nil, fmt.Errorf("index buffer: %w", err)
	}
	return &IndexBuffer{buf: b, count: len(indices)}, nil
}

// Bind selects the buffer on GL_ELEMENT_ARRAY_BUFFER.
func (ib *IndexBuffer) Bind() error { return ib.buf.bind() }

// Unbind clears the GL_ELEMENT_ARRAY_BUFFER binding.
func (ib *IndexBuffer) Unbind() error { return ib.buf.unbind() }

// Handle returns the GL name, or 0 after Delete.
func (ib *IndexBuffer) Handle() uint32 { return ib.buf.handle }

// Count returns the number of indices passed at construction.
func (ib *IndexBuffer) Count() int { return ib.count }

// Type returns the element type of the indices.
func (ib *IndexBuffer) Type() IndexType { return UnsignedInt }

// Size returns the number of bytes uploaded.
func (ib *IndexBuffer) Size() int { return ib.buf.size }

// ReadBack returns the buffer contents as stored on the GPU.
func (ib *IndexBuffer) ReadBack() ([]byte, error) { return ib.buf.readBack() }

// Delete releases the GL buffer. Further calls are no-ops.
func (ib *IndexBuffer) Delete() { ib.buf.release() }

// bytesOf views s as raw bytes in native byte order.
func bytesOf[T float32 | uint32](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
