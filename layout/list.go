// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/responsive/op"
)

// List displays a subsection of a potentially infinitely
// large underlying list. Only the elements that fit the
// main axis constraint are laid out.
type List struct {
	Axis Axis
	// Alignment is the cross axis alignment of list elements.
	Alignment Alignment

	// Position is updated during Layout. To scroll the list
	// programmatically, update Position before calling Layout.
	Position Position
}

// ListElement is a function that computes the dimensions of
// a list element.
type ListElement func(gtx Context, index int) Dimensions

// Position is a List scroll offset represented as an offset from the top edge
// of a child element.
type Position struct {
	// First is the index of the first visible child.
	First int
	// Offset is the distance in pixels from the top edge to the child at index
	// First.
	Offset int
	// Count is the number of visible children.
	Count int
}

type listChild struct {
	size image.Point
	call op.CallOp
}

const inf = 1e6

// Layout the List. Children before Position.First are skipped and the
// first visible child is shifted up by Position.Offset.
func (l *List) Layout(gtx Context, count int, w ListElement) Dimensions {
	if l.Position.First > count {
		l.Position.First = count
	}
	if l.Position.First < 0 {
		l.Position.First = 0
	}
	if l.Position.Offset < 0 || l.Position.First == count {
		l.Position.Offset = 0
	}
	mainMax := l.Axis.Convert(gtx.Constraints.Max).X
	crossMin, crossMax := l.Axis.crossConstraint(gtx.Constraints)
	var children []listChild
	pos := -l.Position.Offset
	for i := l.Position.First; i < count && pos < mainMax; i++ {
		macro := op.Record(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = l.Axis.constraints(0, inf, crossMin, crossMax)
		dims := w(cgtx, i)
		call := macro.Stop()
		children = append(children, listChild{size: dims.Size, call: call})
		pos += l.Axis.Convert(dims.Size).X
	}
	var maxCross int
	for _, c := range children {
		if cr := l.Axis.Convert(c.size).Y; cr > maxCross {
			maxCross = cr
		}
	}
	pos = -l.Position.Offset
	for _, c := range children {
		var cross int
		switch l.Alignment {
		case End:
			cross = maxCross - l.Axis.Convert(c.size).Y
		case Middle:
			cross = (maxCross - l.Axis.Convert(c.size).Y) / 2
		}
		trans := op.Offset(l.Axis.Convert(image.Pt(pos, cross))).Push(gtx.Ops)
		c.call.Add(gtx.Ops)
		trans.Pop()
		pos += l.Axis.Convert(c.size).X
	}
	l.Position.Count = len(children)
	if pos > mainMax {
		pos = mainMax
	}
	if pos < 0 {
		pos = 0
	}
	dims := l.Axis.Convert(image.Pt(pos, maxCross))
	return Dimensions{Size: gtx.Constraints.Constrain(dims)}
}
