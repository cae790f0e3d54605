// SPDX-License-Identifier: EPL-2.0

// Package altest provides an in-memory al.Context for tests.
//
// The fake keeps object tables for buffers, effects and auxiliary effect
// slots, a listener with OpenAL defaults and a sticky error flag that behaves
// like the native one: the first error raised sticks until GetError reads it.
package altest

import (
	"sync"

	"github.com/ik5/ears/al"
)

// Op names a Context method, used for error injection and call counting.
type Op string

const (
	OpGenBuffer                 Op = "GenBuffer"
	OpDeleteBuffer              Op = "DeleteBuffer"
	OpBufferData                Op = "BufferData"
	OpGenEffect                 Op = "GenEffect"
	OpDeleteEffect              Op = "DeleteEffect"
	OpEffecti                   Op = "Effecti"
	OpEffectf                   Op = "Effectf"
	OpGenAuxiliaryEffectSlot    Op = "GenAuxiliaryEffectSlot"
	OpDeleteAuxiliaryEffectSlot Op = "DeleteAuxiliaryEffectSlot"
	OpAuxiliaryEffectSloti      Op = "AuxiliaryEffectSloti"
	OpListenerf                 Op = "Listenerf"
	OpListenerfv                Op = "Listenerfv"
)

// Buffer is the recorded state of a generated buffer.
type Buffer struct {
	Format al.Format
	Freq   int
	Data   []byte
	Filled bool
}

// Effect is the recorded state of a generated effect object.
type Effect struct {
	Type   int32
	Floats map[al.Param]float32
	Ints   map[al.Param]int32
}

// Slot is the recorded state of an auxiliary effect slot.
type Slot struct {
	Effect uint32
}

// Context is a fake al.Context. The zero value is not usable; call New.
type Context struct {
	mtx sync.Mutex

	valid  bool
	err    al.ErrorCode
	nextID uint32

	listener map[al.Param][]float32
	buffers  map[uint32]*Buffer
	effects  map[uint32]*Effect
	slots    map[uint32]*Slot

	// slots a fake source is attached to; deleting them is an invalid operation
	pinned map[uint32]bool

	failOn map[Op]al.ErrorCode
	calls  map[Op]int
}

var _ al.Context = (*Context)(nil)

// New returns a valid fake context with default listener state.
func New() *Context {
	return &Context{
		valid:  true,
		nextID: 1,
		listener: map[al.Param][]float32{
			al.Gain:        {1},
			al.Position:    {0, 0, 0},
			al.Velocity:    {0, 0, 0},
			al.Orientation: {0, 0, -1, 0, 1, 0},
		},
		buffers: make(map[uint32]*Buffer),
		effects: make(map[uint32]*Effect),
		slots:   make(map[uint32]*Slot),
		pinned:  make(map[uint32]bool),
		failOn:  make(map[Op]al.ErrorCode),
		calls:   make(map[Op]int),
	}
}

// NewInvalid returns a fake context for which Valid reports false.
func NewInvalid() *Context {
	c := New()
	c.valid = false
	return c
}

// SetValid toggles context validity.
func (c *Context) SetValid(valid bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.valid = valid
}

// FailOn makes every call to op raise code instead of doing its work.
func (c *Context) FailOn(op Op, code al.ErrorCode) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.failOn[op] = code
}

// Pin marks a slot as referenced by a source, so deleting it fails the way
// the native library fails while a source still uses the slot.
func (c *Context) Pin(slot uint32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.pinned[slot] = true
}

// Calls returns how many times op was invoked.
func (c *Context) Calls(op Op) int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.calls[op]
}

// Buffers returns the number of live buffers.
func (c *Context) Buffers() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.buffers)
}

// Effects returns the number of live effect objects.
func (c *Context) Effects() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.effects)
}

// Slots returns the number of live auxiliary effect slots.
func (c *Context) Slots() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.slots)
}

// Buffer returns a copy of the buffer state.
func (c *Context) Buffer(id uint32) (Buffer, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	b, ok := c.buffers[id]
	if !ok {
		return Buffer{}, false
	}
	return *b, true
}

// Effect returns the effect state. The maps are shared; do not mutate them.
func (c *Context) Effect(id uint32) (Effect, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	e, ok := c.effects[id]
	if !ok {
		return Effect{}, false
	}
	return *e, true
}

// Slot returns the slot state.
func (c *Context) Slot(id uint32) (Slot, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	s, ok := c.slots[id]
	if !ok {
		return Slot{}, false
	}
	return *s, true
}

func (c *Context) Valid() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.valid
}

func (c *Context) GetError() al.ErrorCode {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	err := c.err
	c.err = al.NoError
	return err
}

func (c *Context) Listenerf(param al.Param, value float32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.setListener(OpListenerf, param, []float32{value})
}

func (c *Context) GetListenerf(param al.Param) float32 {
	dst := make([]float32, 1)
	c.GetListenerfv(param, dst)
	return dst[0]
}

func (c *Context) Listenerfv(param al.Param, values []float32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.setListener(OpListenerfv, param, values)
}

// setListener stores a listener property. Must hold mtx.
func (c *Context) setListener(op Op, param al.Param, values []float32) {
	if !c.begin(op) {
		return
	}
	if _, ok := c.listener[param]; !ok {
		c.raise(al.InvalidEnum)
		return
	}
	if len(values) < param.Size() {
		c.raise(al.InvalidValue)
		return
	}

	c.listener[param] = append([]float32(nil), values[:param.Size()]...)
}

func (c *Context) GetListenerfv(param al.Param, dst []float32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	v, ok := c.listener[param]
	if !ok {
		c.raise(al.InvalidEnum)
		return
	}
	copy(dst, v)
}

func (c *Context) GenBuffer() uint32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpGenBuffer) {
		return 0
	}

	id := c.id()
	c.buffers[id] = &Buffer{}
	return id
}

func (c *Context) DeleteBuffer(id uint32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpDeleteBuffer) {
		return
	}
	if _, ok := c.buffers[id]; !ok {
		c.raise(al.InvalidName)
		return
	}
	delete(c.buffers, id)
}

func (c *Context) BufferData(id uint32, format al.Format, data []byte, freq int) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpBufferData) {
		return
	}
	b, ok := c.buffers[id]
	if !ok {
		c.raise(al.InvalidName)
		return
	}
	if format.Channels() == 0 {
		c.raise(al.InvalidEnum)
		return
	}
	if freq <= 0 || len(data)%(format.Channels()*format.BytesPerSample()) != 0 {
		c.raise(al.InvalidValue)
		return
	}

	b.Format = format
	b.Freq = freq
	b.Data = append([]byte(nil), data...)
	b.Filled = true
}

func (c *Context) GenEffect() uint32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpGenEffect) {
		return 0
	}

	id := c.id()
	c.effects[id] = &Effect{
		Floats: make(map[al.Param]float32),
		Ints:   make(map[al.Param]int32),
	}
	return id
}

func (c *Context) DeleteEffect(id uint32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpDeleteEffect) {
		return
	}
	if _, ok := c.effects[id]; !ok {
		c.raise(al.InvalidName)
		return
	}
	delete(c.effects, id)
}

func (c *Context) Effecti(id uint32, param al.Param, value int32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpEffecti) {
		return
	}
	e, ok := c.effects[id]
	if !ok {
		c.raise(al.InvalidName)
		return
	}
	if param == al.EffectType {
		if value != al.EffectNull && value != al.EffectReverb {
			c.raise(al.InvalidValue)
			return
		}
		e.Type = value
		return
	}
	if e.Type != al.EffectReverb {
		c.raise(al.InvalidEnum)
		return
	}
	e.Ints[param] = value
}

func (c *Context) Effectf(id uint32, param al.Param, value float32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpEffectf) {
		return
	}
	e, ok := c.effects[id]
	if !ok {
		c.raise(al.InvalidName)
		return
	}
	if e.Type != al.EffectReverb {
		c.raise(al.InvalidEnum)
		return
	}
	e.Floats[param] = value
}

func (c *Context) GenAuxiliaryEffectSlot() uint32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpGenAuxiliaryEffectSlot) {
		return 0
	}

	id := c.id()
	c.slots[id] = &Slot{}
	return id
}

func (c *Context) DeleteAuxiliaryEffectSlot(id uint32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpDeleteAuxiliaryEffectSlot) {
		return
	}
	if _, ok := c.slots[id]; !ok {
		c.raise(al.InvalidName)
		return
	}
	if c.pinned[id] {
		c.raise(al.InvalidOperation)
		return
	}
	delete(c.slots, id)
}

func (c *Context) AuxiliaryEffectSloti(id uint32, param al.Param, value int32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.begin(OpAuxiliaryEffectSloti) {
		return
	}
	s, ok := c.slots[id]
	if !ok {
		c.raise(al.InvalidName)
		return
	}
	if param != al.EffectSlotEffect {
		c.raise(al.InvalidEnum)
		return
	}
	if value != al.EffectNull {
		if _, ok := c.effects[uint32(value)]; !ok {
			c.raise(al.InvalidValue)
			return
		}
	}
	s.Effect = uint32(value)
}

// begin counts the call and applies injected failures. Must hold mtx.
func (c *Context) begin(op Op) bool {
	c.calls[op]++
	if code, ok := c.failOn[op]; ok {
		c.raise(code)
		return false
	}
	return true
}

// raise sets the error flag unless one is already pending. Must hold mtx.
func (c *Context) raise(code al.ErrorCode) {
	if c.err == al.NoError {
		c.err = code
	}
}

func (c *Context) id() uint32 {
	id := c.nextID
	c.nextID++
	return id
}
