package glquad_test

import (
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glquad"
)

// fakeDevice is an in-memory GL that tracks objects and bindings and
// queues GL error codes the way a driver would.
type fakeDevice struct {
	nextHandle uint32
	errs       []glquad.ErrorCode

	// failOn queues a code whenever the named method is called.
	failOn map[string]glquad.ErrorCode

	buffers        map[uint32][]byte
	bound          map[glquad.BufferTarget]uint32
	deletedBuffers []uint32

	vaos     map[uint32]bool
	boundVAO uint32
	enabled  map[uint32]bool
	attribs  map[uint32]int32

	shaders        map[uint32]*fakeShader
	deletedShaders []uint32
	programs       map[uint32]*fakeProgram
	current        uint32
	failLink       bool
	uniformLookups int
	uniforms       map[int32]mgl32.Vec4

	clears int
	draws  []fakeDraw
}

type fakeShader struct {
	stage    glquad.Stage
	src      string
	compiled bool
}

type fakeProgram struct {
	shaders   []uint32
	linked    bool
	validated bool
	deleted   bool
}

type fakeDraw struct {
	count   int32
	typ     glquad.IndexType
	program uint32
	ibo     uint32
	enabled []uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failOn:   make(map[string]glquad.ErrorCode),
		buffers:  make(map[uint32][]byte),
		bound:    make(map[glquad.BufferTarget]uint32),
		vaos:     make(map[uint32]bool),
		enabled:  make(map[uint32]bool),
		attribs:  make(map[uint32]int32),
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		uniforms: make(map[int32]mgl32.Vec4),
	}
}

func (d *fakeDevice) raise(method string) {
	if code, ok := d.failOn[method]; ok {
		d.errs = append(d.errs, code)
	}
}

func (d *fakeDevice) push(code glquad.ErrorCode) { d.errs = append(d.errs, code) }

func (d *fakeDevice) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *fakeDevice) GetError() glquad.ErrorCode {
	if len(d.errs) == 0 {
		return glquad.NoError
	}
	code := d.errs[0]
	d.errs = d.errs[1:]
	return code
}

func (d *fakeDevice) Version() string { return "4.1 fake" }

func (d *fakeDevice) GenBuffer() uint32 {
	d.raise("GenBuffer")
	h := d.handle()
	d.buffers[h] = nil
	return h
}

func (d *fakeDevice) DeleteBuffer(handle uint32) {
	d.raise("DeleteBuffer")
	delete(d.buffers, handle)
	d.deletedBuffers = append(d.deletedBuffers, handle)
	for target, h := range d.bound {
		if h == handle {
			d.bound[target] = 0
		}
	}
}

func (d *fakeDevice) BindBuffer(target glquad.BufferTarget, handle uint32) {
	d.raise("BindBuffer")
	if _, ok := d.buffers[handle]; handle != 0 && !ok {
		d.push(glquad.InvalidOperation)
		return
	}
	d.bound[target] = handle
}

func (d *fakeDevice) BufferData(target glquad.BufferTarget, data []byte, usage glquad.BufferUsage) {
	d.raise("BufferData")
	h := d.bound[target]
	if h == 0 {
		d.push(glquad.InvalidOperation)
		return
	}
	d.buffers[h] = slices.Clone(data)
}

func (d *fakeDevice) GetBufferSubData(target glquad.BufferTarget, offset int, dst []byte) {
	d.raise("GetBufferSubData")
	h := d.bound[target]
	if h == 0 {
		d.push(glquad.InvalidOperation)
		return
	}
	copy(dst, d.buffers[h][offset:])
}

func (d *fakeDevice) GenVertexArray() uint32 {
	d.raise("GenVertexArray")
	h := d.handle()
	d.vaos[h] = true
	return h
}

func (d *fakeDevice) DeleteVertexArray(handle uint32) {
	delete(d.vaos, handle)
	if d.boundVAO == handle {
		d.boundVAO = 0
	}
}

func (d *fakeDevice) BindVertexArray(handle uint32) {
	if handle != 0 && !d.vaos[handle] {
		d.push(glquad.InvalidOperation)
		return
	}
	d.boundVAO = handle
}

func (d *fakeDevice) EnableVertexAttribArray(slot uint32) {
	d.raise("EnableVertexAttribArray")
	if d.boundVAO == 0 {
		d.push(glquad.InvalidOperation)
		return
	}
	d.enabled[slot] = true
}

func (d *fakeDevice) VertexAttribPointer(slot uint32, size, stride int32, offset uintptr) {
	if d.boundVAO == 0 || d.bound[glquad.ArrayBuffer] == 0 {
		d.push(glquad.InvalidOperation)
		return
	}
	d.attribs[slot] = size
}

func (d *fakeDevice) CreateShader(stage glquad.Stage) uint32 {
	d.raise("CreateShader")
	h := d.handle()
	d.shaders[h] = &fakeShader{stage: stage}
	return h
}

func (d *fakeDevice) ShaderSource(shader uint32, src string) {
	if s, ok := d.shaders[shader]; ok {
		s.src = src
	}
}

func (d *fakeDevice) CompileShader(shader uint32) {
	if s, ok := d.shaders[shader]; ok {
		s.compiled = !strings.Contains(s.src, "syntax error")
	}
}

func (d *fakeDevice) ShaderCompileStatus(shader uint32) bool {
	d.raise("ShaderCompileStatus")
	s, ok := d.shaders[shader]
	return ok && s.compiled
}

func (d *fakeDevice) ShaderInfoLog(shader uint32) string {
	if s, ok := d.shaders[shader]; ok && s.compiled {
		return ""
	}
	return "0:1(1): error: syntax error"
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.raise("DeleteShader")
	if shader == 0 {
		return
	}
	delete(d.shaders, shader)
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.raise("CreateProgram")
	h := d.handle()
	d.programs[h] = &fakeProgram{}
	return h
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	p, ok := d.programs[program]
	if _, exists := d.shaders[shader]; !ok || !exists {
		d.push(glquad.InvalidValue)
		return
	}
	p.shaders = append(p.shaders, shader)
}

func (d *fakeDevice) LinkProgram(program uint32) {
	p, ok := d.programs[program]
	if !ok {
		d.push(glquad.InvalidValue)
		return
	}
	p.linked = !d.failLink && len(p.shaders) == 2
	for _, s := range p.shaders {
		if sh, ok := d.shaders[s]; !ok || !sh.compiled {
			p.linked = false
		}
	}
}

func (d *fakeDevice) ProgramLinkStatus(program uint32) bool {
	d.raise("ProgramLinkStatus")
	p, ok := d.programs[program]
	return ok && p.linked
}

func (d *fakeDevice) ProgramInfoLog(program uint32) string {
	if p, ok := d.programs[program]; ok && p.linked {
		return ""
	}
	return "error: linking failed"
}

func (d *fakeDevice) ValidateProgram(program uint32) {
	if p, ok := d.programs[program]; ok {
		p.validated = true
	}
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.raise("UseProgram")
	if p, ok := d.programs[program]; program != 0 && (!ok || !p.linked) {
		d.push(glquad.InvalidOperation)
		return
	}
	d.current = program
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	if p, ok := d.programs[program]; ok {
		p.deleted = true
	}
	if d.current == program {
		d.current = 0
	}
}

func (d *fakeDevice) GetUniformLocation(program uint32, name string) int32 {
	d.uniformLookups++
	if name == glquad.ColorUniform {
		return 0
	}
	return -1
}

func (d *fakeDevice) Uniform4f(location int32, v mgl32.Vec4) {
	if d.current == 0 {
		d.push(glquad.InvalidOperation)
		return
	}
	d.uniforms[location] = v
}

func (d *fakeDevice) Clear() { d.clears++ }

func (d *fakeDevice) DrawElements(count int32, typ glquad.IndexType) {
	d.raise("DrawElements")
	ibo := d.bound[glquad.ElementArrayBuffer]
	if d.boundVAO == 0 || ibo == 0 || d.current == 0 {
		d.push(glquad.InvalidOperation)
		return
	}

	var enabled []uint32
	for slot, on := range d.enabled {
		if on {
			enabled = append(enabled, slot)
		}
	}
	slices.Sort(enabled)
	d.draws = append(d.draws, fakeDraw{count: count, typ: typ, program: d.current, ibo: ibo, enabled: enabled})
}

// liveBuffers returns the number of buffers not yet deleted.
func (d *fakeDevice) liveBuffers() int { return len(d.buffers) }

func (d *fakeDevice) livePrograms() int {
	n := 0
	for _, p := range d.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

// fakeWindow closes itself after closeAfter frames. Time advances by tick
// on every call.
type fakeWindow struct {
	closeAfter int
	checks     int
	tick       float64
	now        float64

	swaps     int
	polls     int
	titles    []string
	destroyed bool
}

func (w *fakeWindow) ShouldClose() bool {
	done := w.checks >= w.closeAfter
	w.checks++
	return done
}

func (w *fakeWindow) SwapBuffers()          { w.swaps++ }
func (w *fakeWindow) PollEvents()           { w.polls++ }
func (w *fakeWindow) SetTitle(title string) { w.titles = append(w.titles, title) }
func (w *fakeWindow) Destroy()              { w.destroyed = true }

func (w *fakeWindow) Time() float64 {
	t := w.now
	w.now += w.tick
	return t
}

// fakePlatform hands out a fakeWindow and fakeDevice.
type fakePlatform struct {
	initErr   error
	windowErr error
	loadErr   error

	dev *fakeDevice
	win *fakeWindow

	initialized bool
	terminated  bool
	windowCfg   glquad.WindowConfig
}

func (p *fakePlatform) Init() error {
	if p.initErr != nil {
		return p.initErr
	}
	p.initialized = true
	return nil
}

func (p *fakePlatform) CreateWindow(cfg glquad.WindowConfig) (glquad.Window, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.windowCfg = cfg
	return p.win, nil
}

func (p *fakePlatform) MakeContextCurrent(w glquad.Window) (glquad.Device, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.dev, nil
}

func (p *fakePlatform) Terminate() { p.terminated = true }
