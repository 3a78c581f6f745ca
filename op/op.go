// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operations for updating a user interface.

Programs describe their user interfaces with operations, or ops. An Ops
list is a compact serialized record of drawing and placement commands
that a renderer such as package raster or package svg replays.

Placement is expressed with offset transforms. The TransformStack
returned by Push restores the previous offset when popped:

	ops := new(op.Ops)
	// Move subsequent operations 10 pixels right and down.
	stack := op.Offset(image.Pt(10, 10)).Push(ops)
	...
	stack.Pop()

The MacroOp records a list of operations to be executed later. Layouts
use macros to measure a widget before knowing where to place it:

	macro := op.Record(ops)
	dims := w(gtx)
	call := macro.Stop()

	// Replay the recorded operations at the final position.
	defer op.Offset(pos).Push(ops).Pop()
	call.Add(ops)
*/
package op

import (
	"encoding/binary"
	"image"

	"gioui.org/responsive/internal/opconst"
)

// Ops holds a list of operations. Operations are stored in
// serialized form to avoid garbage during construction of
// the ops list.
type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the serialized operations.
	data []byte
	// refs contains external references for operations.
	refs []interface{}

	stackStack stack
	macroStack stack
}

// MacroOp records a list of operations for later use.
type MacroOp struct {
	ops *Ops
	id  stackID
	pc  pc
}

// CallOp invokes the operations recorded by Record.
type CallOp struct {
	// Ops is the list of operations to invoke.
	ops   *Ops
	start pc
	end   pc
}

// TransformOp represents an offset of the current transform.
type TransformOp struct {
	offset image.Point
}

// TransformStack represents a TransformOp pushed on the transformation stack.
type TransformStack struct {
	id      stackID
	macroID int
	ops     *Ops
}

// stack tracks the integer identities of pushed transforms and
// MacroOp operations to ensure correct pairing of Push/Pop and
// Record/Stop.
type stack struct {
	currentID int
	nextID    int
}

type stackID struct {
	id   int
	prev int
}

type pc struct {
	data int
	refs int
}

// Record a macro of operations.
func Record(o *Ops) MacroOp {
	m := MacroOp{
		ops: o,
		id:  o.macroStack.push(),
		pc:  o.pc(),
	}
	// Reserve room for a macro definition. Updated in Stop.
	m.ops.Write(opconst.TypeMacroLen)
	m.fill()
	return m
}

// Stop ending a previously started recording and returns an
// operation for replaying it.
func (m MacroOp) Stop() CallOp {
	m.ops.macroStack.pop(m.id)
	m.fill()
	return CallOp{
		ops:   m.ops,
		start: m.pc,
		end:   m.ops.pc(),
	}
}

func (m *MacroOp) fill() {
	pc := m.ops.pc()
	// Fill out the macro definition reserved in Record.
	data := m.ops.data[m.pc.data:]
	data = data[:opconst.TypeMacroLen]
	data[0] = byte(opconst.TypeMacro)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(pc.data))
	bo.PutUint32(data[5:], uint32(pc.refs))
}

// Add the recorded list of operations. Add
// panics if the Ops containing the recording
// has been reset.
func (c CallOp) Add(o *Ops) {
	if c.ops == nil {
		return
	}
	data := o.Write(opconst.TypeCallLen, c.ops)
	data[0] = byte(opconst.TypeCall)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(c.start.data))
	bo.PutUint32(data[5:], uint32(c.start.refs))
	bo.PutUint32(data[9:], uint32(c.end.data))
	bo.PutUint32(data[13:], uint32(c.end.refs))
}

// Offset creates a TransformOp with the offset o.
func Offset(o image.Point) TransformOp {
	return TransformOp{offset: o}
}

// Push the current transformation to the stack and then multiply the
// current transformation with t.
func (t TransformOp) Push(o *Ops) TransformStack {
	id := o.stackStack.push()
	t.add(o, true)
	return TransformStack{ops: o, id: id, macroID: o.macroStack.currentID}
}

// Add is like Push except it doesn't push the current transformation to the
// stack.
func (t TransformOp) Add(o *Ops) {
	t.add(o, false)
}

func (t TransformOp) add(o *Ops, push bool) {
	data := o.Write(opconst.TypeTransformLen)
	data[0] = byte(opconst.TypeTransform)
	if push {
		data[1] = 1
	}
	bo := binary.LittleEndian
	bo.PutUint32(data[2:], uint32(int32(t.offset.X)))
	bo.PutUint32(data[6:], uint32(int32(t.offset.Y)))
}

// Pop restores the transformation in effect before Push.
func (t TransformStack) Pop() {
	if t.ops.macroStack.currentID != t.macroID {
		panic("pop in a different macro than push")
	}
	t.ops.stackStack.pop(t.id)
	data := t.ops.Write(opconst.TypePopTransformLen)
	data[0] = byte(opconst.TypePopTransform)
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded macros.
func (o *Ops) Reset() {
	o.stackStack = stack{}
	o.macroStack = stack{}
	// Leave references to the GC.
	for i := range o.refs {
		o.refs[i] = nil
	}
	o.data = o.data[:0]
	o.refs = o.refs[:0]
	o.version++
}

// Data is for internal use only.
func (o *Ops) Data() []byte {
	return o.data
}

// Refs is for internal use only.
func (o *Ops) Refs() []interface{} {
	return o.refs
}

// Version is for internal use only.
func (o *Ops) Version() int {
	return o.version
}

// Write is for internal use only.
func (o *Ops) Write(n int, refs ...interface{}) []byte {
	o.data = append(o.data, make([]byte, n)...)
	o.refs = append(o.refs, refs...)
	return o.data[len(o.data)-n:]
}

func (o *Ops) pc() pc {
	return pc{data: len(o.data), refs: len(o.refs)}
}

func (s *stack) push() stackID {
	s.nextID++
	sid := stackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid stackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid stackID) {
	s.check(sid)
	s.currentID = sid.prev
}
