// SPDX-License-Identifier: Unlicense OR MIT

package scaffold

import (
	"image"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/op"
	"gioui.org/responsive/sizeclass"
)

// Scaffold arranges the chrome of a screen around its main content.
// Each slot holds zero or more widgets which are laid out on top of
// each other; the extent of a slot is the largest extent among its
// widgets.
type Scaffold struct {
	TopBar []layout.Widget
	// BottomBar is shown only in compact windows.
	BottomBar []BarWidget
	// SideRail is shown only in non-compact windows.
	SideRail []layout.Widget
	Snackbar []layout.Widget
	// FAB is shown only in compact windows.
	FAB         []layout.Widget
	FabPosition FabPosition
	// ContentInsets is the padding handed to the content for sides
	// not covered by chrome.
	ContentInsets Insets
	// WindowSize overrides the size class derived from the
	// constraints. Programs that classify the whole window, not the
	// area given to the scaffold, set it.
	WindowSize *sizeclass.WindowSizeClass
}

// Content is the main content of a scaffold. It receives the padding
// it must keep clear of chrome.
type Content func(gtx layout.Context, pad Padding) layout.Dimensions

type slot struct {
	calls []op.CallOp
	size  image.Point
}

// Layout the scaffold and its content in the maximum constraints of
// gtx. The returned Frame describes where every slot ended up.
func (s Scaffold) Layout(gtx layout.Context, content Content) Frame {
	size := gtx.Constraints.Max
	cs := gtx.Constraints.Loose()
	rtl := gtx.RTL()
	wsc := s.windowSize(gtx)
	compact := wsc.IsCompactWidth()
	in := s.ContentInsets.px(gtx.Metric)
	spacing := gtx.Dp(FabSpacing)

	f := Frame{
		Size:       size,
		WindowSize: wsc,
		Direction:  gtx.Locale.Direction,
	}

	var fab slot
	if compact {
		fab = measure(gtx, cs.SubMax(image.Pt(in.start+in.end, in.bottom)), s.FAB)
	}
	if fab.present() {
		left := (size.X - fab.size.X) / 2
		if s.FabPosition == BottomEnd {
			if rtl {
				left = spacing
			} else {
				left = size.X - fab.size.X - spacing
			}
		}
		f.Fab = &FabPlacement{Left: left, Width: fab.size.X, Height: fab.size.Y}
	}

	var rail slot
	if !compact {
		rail = measure(gtx, cs, s.SideRail)
	}
	railWidth := rail.width()

	top := measure(gtx, cs.SubMax(image.Pt(railWidth, 0)), s.TopBar)

	lead := in.start
	if rail.present() {
		lead = railWidth
	}
	snack := measure(gtx, cs.SubMax(image.Pt(lead+in.end, in.bottom)), s.Snackbar)

	var bottom slot
	if compact {
		bottom = measureBars(gtx, cs, s.BottomBar, f.Fab)
	}
	bottomHeight := bottom.height()

	if f.Fab != nil {
		if bottom.present() {
			f.FabOffset = bottomHeight + f.Fab.Height + spacing
		} else {
			f.FabOffset = f.Fab.Height + spacing + in.bottom
		}
	}
	if snack.present() {
		switch {
		case f.Fab != nil:
			f.SnackbarOffset = snack.size.Y + f.FabOffset
		case bottom.present():
			f.SnackbarOffset = snack.size.Y + bottomHeight
		default:
			f.SnackbarOffset = snack.size.Y + in.bottom
		}
	}

	f.Padding = Padding{Top: in.top, Bottom: in.bottom, Start: in.start, End: in.end}
	if top.present() {
		f.Padding.Top = top.height()
	}
	if bottom.present() {
		f.Padding.Bottom = bottomHeight
	}
	if rail.present() {
		f.Padding.Start = railWidth
	}

	var main slot
	if content != nil {
		macro := op.Record(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = cs
		dims := content(cgtx, f.Padding)
		main = slot{calls: []op.CallOp{macro.Stop()}, size: dims.Size}
	}

	f.place(gtx, MainContent, image.Point{}, main)
	topX := railWidth
	if rtl {
		topX = 0
	}
	f.place(gtx, TopBar, image.Pt(topX, 0), top)
	// Center the snackbar between the leading reservation and the
	// trailing inset.
	snackX := lead + (size.X-lead-in.end-snack.size.X)/2
	if rtl {
		snackX = size.X - snackX - snack.size.X
	}
	f.place(gtx, Snackbar, image.Pt(snackX, size.Y-f.SnackbarOffset), snack)
	f.place(gtx, BottomBar, image.Pt(0, size.Y-bottomHeight), bottom)
	railX := 0
	if rtl {
		railX = size.X - railWidth
	}
	f.place(gtx, SideRail, image.Pt(railX, 0), rail)
	if f.Fab != nil {
		f.place(gtx, FAB, image.Pt(f.Fab.Left, size.Y-f.FabOffset), fab)
	}
	return f
}

func (s Scaffold) windowSize(gtx layout.Context) sizeclass.WindowSizeClass {
	if s.WindowSize != nil {
		return *s.WindowSize
	}
	return sizeclass.FromConstraints(gtx.Metric, gtx.Constraints.Max)
}

// place adds the recorded widgets of sl at pt, unless the slot is
// absent.
func (f *Frame) place(gtx layout.Context, s Slot, pt image.Point, sl slot) {
	if !sl.present() {
		return
	}
	trans := op.Offset(pt).Push(gtx.Ops)
	for _, c := range sl.calls {
		c.Add(gtx.Ops)
	}
	trans.Pop()
	f.Regions = append(f.Regions, Region{
		Slot: s,
		Rect: image.Rectangle{Min: pt, Max: pt.Add(sl.size)},
	})
}

func measure(gtx layout.Context, cs layout.Constraints, widgets []layout.Widget) slot {
	var sl slot
	for _, w := range widgets {
		macro := op.Record(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = cs
		dims := w(cgtx)
		sl.add(macro.Stop(), dims.Size)
	}
	return sl
}

func measureBars(gtx layout.Context, cs layout.Constraints, bars []BarWidget, fab *FabPlacement) slot {
	var sl slot
	for _, w := range bars {
		macro := op.Record(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = cs
		dims := w(cgtx, fab)
		sl.add(macro.Stop(), dims.Size)
	}
	return sl
}

func (sl *slot) add(c op.CallOp, sz image.Point) {
	sl.calls = append(sl.calls, c)
	if sz.X > sl.size.X {
		sl.size.X = sz.X
	}
	if sz.Y > sl.size.Y {
		sl.size.Y = sz.Y
	}
}

func (sl slot) present() bool {
	return sl.size.X > 0 && sl.size.Y > 0
}

func (sl slot) width() int {
	if !sl.present() {
		return 0
	}
	return sl.size.X
}

func (sl slot) height() int {
	if !sl.present() {
		return 0
	}
	return sl.size.Y
}
