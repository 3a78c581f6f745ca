// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"encoding/binary"
	"image"
	"image/color"

	"gioui.org/responsive/internal/opconst"
	"gioui.org/responsive/op"
)

// ColorOp sets the material to a constant color.
type ColorOp struct {
	Color color.NRGBA
}

// PaintOp fills Rect with the current material.
type PaintOp struct {
	Rect image.Rectangle
}

// LabelOp draws Text in the current material. Renderers use
// a fixed size face; the label is not shaped or wrapped.
type LabelOp struct {
	Text string
}

func (c ColorOp) Add(o *op.Ops) {
	data := o.Write(opconst.TypeColorLen)
	data[0] = byte(opconst.TypeColor)
	data[1] = c.Color.R
	data[2] = c.Color.G
	data[3] = c.Color.B
	data[4] = c.Color.A
}

func (d PaintOp) Add(o *op.Ops) {
	data := o.Write(opconst.TypePaintLen)
	data[0] = byte(opconst.TypePaint)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(int32(d.Rect.Min.X)))
	bo.PutUint32(data[5:], uint32(int32(d.Rect.Min.Y)))
	bo.PutUint32(data[9:], uint32(int32(d.Rect.Max.X)))
	bo.PutUint32(data[13:], uint32(int32(d.Rect.Max.Y)))
}

func (l LabelOp) Add(o *op.Ops) {
	if l.Text == "" {
		return
	}
	data := o.Write(opconst.TypeLabelLen, l.Text)
	data[0] = byte(opconst.TypeLabel)
}

// FillRect fills r with c.
func FillRect(ops *op.Ops, c color.NRGBA, r image.Rectangle) {
	ColorOp{Color: c}.Add(ops)
	PaintOp{Rect: r}.Add(ops)
}
