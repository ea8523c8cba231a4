package renderer

import (
	"sort"

	"gl-scene/core"
)

// Tracker is a Device that counts live GPU objects per kind. Wrap the real
// device with it at startup and call Report after all resources have been
// destroyed.
type Tracker struct {
	Device
	live map[ObjectKind]int
}

func NewTracker(dev Device) *Tracker {
	return &Tracker{Device: dev, live: make(map[ObjectKind]int)}
}

func (t *Tracker) created(kind ObjectKind, id uint32) uint32 {
	if id != 0 {
		t.live[kind]++
	}
	return id
}

func (t *Tracker) deleted(kind ObjectKind, id uint32) {
	if id != 0 {
		t.live[kind]--
	}
}

func (t *Tracker) CreateVertexArray() uint32 {
	return t.created(ObjectVertexArray, t.Device.CreateVertexArray())
}

func (t *Tracker) DeleteVertexArray(id uint32) {
	t.deleted(ObjectVertexArray, id)
	t.Device.DeleteVertexArray(id)
}

func (t *Tracker) CreateBuffer() uint32 {
	return t.created(ObjectBuffer, t.Device.CreateBuffer())
}

func (t *Tracker) DeleteBuffer(id uint32) {
	t.deleted(ObjectBuffer, id)
	t.Device.DeleteBuffer(id)
}

func (t *Tracker) CreateTexture() uint32 {
	return t.created(ObjectTexture, t.Device.CreateTexture())
}

func (t *Tracker) DeleteTexture(id uint32) {
	t.deleted(ObjectTexture, id)
	t.Device.DeleteTexture(id)
}

func (t *Tracker) CreateFramebuffer() uint32 {
	return t.created(ObjectFramebuffer, t.Device.CreateFramebuffer())
}

func (t *Tracker) DeleteFramebuffer(id uint32) {
	t.deleted(ObjectFramebuffer, id)
	t.Device.DeleteFramebuffer(id)
}

func (t *Tracker) CreateRenderbuffer() uint32 {
	return t.created(ObjectRenderbuffer, t.Device.CreateRenderbuffer())
}

func (t *Tracker) DeleteRenderbuffer(id uint32) {
	t.deleted(ObjectRenderbuffer, id)
	t.Device.DeleteRenderbuffer(id)
}

func (t *Tracker) CreateShader(stage ShaderStage) uint32 {
	return t.created(ObjectShader, t.Device.CreateShader(stage))
}

func (t *Tracker) DeleteShader(id uint32) {
	t.deleted(ObjectShader, id)
	t.Device.DeleteShader(id)
}

func (t *Tracker) CreateProgram() uint32 {
	return t.created(ObjectProgram, t.Device.CreateProgram())
}

func (t *Tracker) DeleteProgram(id uint32) {
	t.deleted(ObjectProgram, id)
	t.Device.DeleteProgram(id)
}

// Live returns the number of live objects of kind.
func (t *Tracker) Live(kind ObjectKind) int {
	return t.live[kind]
}

// Leaks returns the kinds with objects still alive.
func (t *Tracker) Leaks() map[ObjectKind]int {
	leaks := make(map[ObjectKind]int)
	for kind, n := range t.live {
		if n != 0 {
			leaks[kind] = n
		}
	}
	return leaks
}

// Report logs a warning per leaked kind and returns whether anything leaked.
func (t *Tracker) Report() bool {
	leaks := t.Leaks()
	kinds := make([]ObjectKind, 0, len(leaks))
	for kind := range leaks {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, kind := range kinds {
		core.LogWarn("leaked %d %s object(s)", leaks[kind], kind)
	}
	return len(leaks) > 0
}
