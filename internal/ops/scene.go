// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"image"
	"image/color"

	"gioui.org/responsive/internal/opconst"
	"gioui.org/responsive/op"
)

// Item is a paint or label operation with the transform stack
// already applied.
type Item struct {
	Color color.NRGBA
	// Rect is the filled area. For labels only Rect.Min is
	// meaningful: it is the top-left corner of the text.
	Rect  image.Rectangle
	Label string
}

// Flatten decodes o into the list of items it draws, in drawing
// order.
func Flatten(o *op.Ops) []Item {
	var (
		r     Reader
		items []Item
		stack []image.Point
		off   image.Point
		col   color.NRGBA
	)
	r.Reset(o)
	for encOp, ok := r.Decode(); ok; encOp, ok = r.Decode() {
		switch opconst.OpType(encOp.Data[0]) {
		case opconst.TypeTransform:
			d, push := DecodeTransform(encOp.Data)
			if push {
				stack = append(stack, off)
			}
			off = off.Add(d)
		case opconst.TypePopTransform:
			n := len(stack) - 1
			off = stack[n]
			stack = stack[:n]
		case opconst.TypeColor:
			col = DecodeColor(encOp.Data)
		case opconst.TypePaint:
			items = append(items, Item{
				Color: col,
				Rect:  DecodePaint(encOp.Data).Add(off),
			})
		case opconst.TypeLabel:
			items = append(items, Item{
				Color: col,
				Rect:  image.Rectangle{Min: off, Max: off},
				Label: DecodeLabel(encOp.Data, encOp.Refs),
			})
		}
	}
	return items
}
