// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
	"image"
	"image/color"

	"gioui.org/responsive/internal/opconst"
	"gioui.org/responsive/op"
)

// Reader parses an ops list. Macro definitions are skipped and
// only executed through the calls that replay them.
type Reader struct {
	pc    pc
	stack []callFrame
	ops   *op.Ops
}

// EncodedOp represents an encoded op returned by
// Reader.
type EncodedOp struct {
	Key  Key
	Data []byte
	Refs []interface{}
}

// Key is a unique key for a given op.
type Key struct {
	ops     *op.Ops
	pc      int
	version int
}

type pc struct {
	data int
	refs int
}

type callFrame struct {
	ops   *op.Ops
	retPC pc
	endPC pc
}

type callOp struct {
	ops   *op.Ops
	start pc
	end   pc
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *op.Ops) {
	r.stack = r.stack[:0]
	r.pc = pc{}
	r.ops = ops
}

func (r *Reader) Decode() (EncodedOp, bool) {
	if r.ops == nil {
		return EncodedOp{}, false
	}
	for {
		if len(r.stack) > 0 {
			b := r.stack[len(r.stack)-1]
			if r.pc == b.endPC {
				r.ops = b.ops
				r.pc = b.retPC
				r.stack = r.stack[:len(r.stack)-1]
				continue
			}
		}
		data := r.ops.Data()
		data = data[r.pc.data:]
		if len(data) == 0 {
			return EncodedOp{}, false
		}
		key := Key{ops: r.ops, pc: r.pc.data, version: r.ops.Version()}
		t := opconst.OpType(data[0])
		n := t.Size()
		nrefs := t.NumRefs()
		data = data[:n]
		refs := r.ops.Refs()
		refs = refs[r.pc.refs:]
		refs = refs[:nrefs]
		switch t {
		case opconst.TypeMacro:
			// Skip the recording; it runs when called.
			r.pc = decodeMacroEnd(data)
			continue
		case opconst.TypeCall:
			call := decodeCall(data, refs)
			retPC := r.pc
			retPC.data += n
			retPC.refs += nrefs
			r.stack = append(r.stack, callFrame{
				ops:   r.ops,
				retPC: retPC,
				endPC: call.end,
			})
			r.ops = call.ops
			r.pc = call.start
			r.pc.data += opconst.TypeMacroLen
			continue
		}
		r.pc.data += n
		r.pc.refs += nrefs
		return EncodedOp{Key: key, Data: data, Refs: refs}, true
	}
}

// DecodeTransform decodes the offset of a TypeTransform op and whether
// it pushes the previous transform.
func DecodeTransform(data []byte) (off image.Point, push bool) {
	if opconst.OpType(data[0]) != opconst.TypeTransform {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	off.X = int(int32(bo.Uint32(data[2:])))
	off.Y = int(int32(bo.Uint32(data[6:])))
	return off, data[1] != 0
}

func DecodeColor(data []byte) color.NRGBA {
	if opconst.OpType(data[0]) != opconst.TypeColor {
		panic("invalid op")
	}
	return color.NRGBA{
		R: data[1],
		G: data[2],
		B: data[3],
		A: data[4],
	}
}

func DecodePaint(data []byte) image.Rectangle {
	if opconst.OpType(data[0]) != opconst.TypePaint {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return image.Rectangle{
		Min: image.Point{
			X: int(int32(bo.Uint32(data[1:]))),
			Y: int(int32(bo.Uint32(data[5:]))),
		},
		Max: image.Point{
			X: int(int32(bo.Uint32(data[9:]))),
			Y: int(int32(bo.Uint32(data[13:]))),
		},
	}
}

func DecodeLabel(data []byte, refs []interface{}) string {
	if opconst.OpType(data[0]) != opconst.TypeLabel {
		panic("invalid op")
	}
	return refs[0].(string)
}

func decodeMacroEnd(data []byte) pc {
	bo := binary.LittleEndian
	return pc{
		data: int(int32(bo.Uint32(data[1:]))),
		refs: int(int32(bo.Uint32(data[5:]))),
	}
}

func decodeCall(data []byte, refs []interface{}) callOp {
	bo := binary.LittleEndian
	return callOp{
		ops: refs[0].(*op.Ops),
		start: pc{
			data: int(int32(bo.Uint32(data[1:]))),
			refs: int(int32(bo.Uint32(data[5:]))),
		},
		end: pc{
			data: int(int32(bo.Uint32(data[9:]))),
			refs: int(int32(bo.Uint32(data[13:]))),
		},
	}
}
