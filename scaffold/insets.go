// SPDX-License-Identifier: Unlicense OR MIT

package scaffold

import (
	"gioui.org/responsive/io/system"
	"gioui.org/responsive/layout"
	"gioui.org/responsive/sizeclass"
	"gioui.org/responsive/unit"
)

// Insets is a safe area reservation. Start and End follow the text
// direction: Start is the left edge for left-to-right layouts and the
// right edge for right-to-left layouts.
type Insets struct {
	Top, Bottom, Start, End unit.Dp
}

// Padding is the space the main content must keep clear of chrome, in
// pixels. Start and End follow the text direction.
type Padding struct {
	Top, Bottom, Start, End int
}

// InsetsFromSystem converts the physical system insets to insets
// relative to the text direction dir.
func InsetsFromSystem(in system.Insets, dir system.TextDirection) Insets {
	return Insets{
		Top:    in.Top,
		Bottom: in.Bottom,
		Start:  in.Start(dir),
		End:    in.End(dir),
	}
}

// TopBarInsets returns the insets a top bar should apply itself. In
// compact windows the top bar spans the full width and keeps every
// side; otherwise the side rail owns the start and bottom edges and
// only the top and end sides remain.
func TopBarInsets(wsc sizeclass.WindowSizeClass, in Insets) Insets {
	if wsc.IsCompactWidth() {
		return in
	}
	return Insets{Top: in.Top, End: in.End}
}

type pxInsets struct {
	top, bottom, start, end int
}

func (in Insets) px(m unit.Metric) pxInsets {
	return pxInsets{
		top:    m.Dp(in.Top),
		bottom: m.Dp(in.Bottom),
		start:  m.Dp(in.Start),
		end:    m.Dp(in.End),
	}
}

// Left returns the padding on the left edge for the text direction dir.
func (p Padding) Left(dir system.TextDirection) int {
	if dir == system.RTL {
		return p.End
	}
	return p.Start
}

// Right returns the padding on the right edge for the text direction dir.
func (p Padding) Right(dir system.TextDirection) int {
	if dir == system.RTL {
		return p.Start
	}
	return p.End
}

// Inset converts p to a layout.Inset for the text direction dir.
func (p Padding) Inset(m unit.Metric, dir system.TextDirection) layout.Inset {
	return layout.Inset{
		Top:    m.PxToDp(p.Top),
		Bottom: m.PxToDp(p.Bottom),
		Left:   m.PxToDp(p.Left(dir)),
		Right:  m.PxToDp(p.Right(dir)),
	}
}
