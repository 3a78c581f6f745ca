// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/op/paint"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/unit"
)

// NavItem is a navigation destination.
type NavItem struct {
	Label string
	// Icon is a short glyph drawn inside the indicator.
	Icon string
}

type NavigationBarStyle struct {
	Items    []NavItem
	Selected int
	// Background fills the bar, Notch the area reserved for the FAB.
	Background color.NRGBA
	Notch      color.NRGBA
	Indicator  color.NRGBA
	Color      color.NRGBA
	Height     unit.Dp
	// Inset is the bottom safe area applied inside the bar.
	Inset unit.Dp
	Face  font.Face
}

type NavigationRailStyle struct {
	Items    []NavItem
	Selected int
	// Header is drawn above the items, typically a FAB.
	Header     layout.Widget
	Background color.NRGBA
	Divider    color.NRGBA
	Indicator  color.NRGBA
	Color      color.NRGBA
	Width      unit.Dp
	// Insets are applied inside the rail. The end inset is ignored.
	Insets scaffold.Insets
	Face   font.Face
}

type navItem struct {
	item      NavItem
	selected  bool
	indicator color.NRGBA
	pill      image.Point
	color     color.NRGBA
	face      font.Face
}

const (
	notchDepth  = unit.Dp(8)
	notchMargin = unit.Dp(8)
)

func NavigationBar(th *Theme, items []NavItem, selected int) NavigationBarStyle {
	return NavigationBarStyle{
		Items:      items,
		Selected:   selected,
		Background: th.SurfaceContainer,
		Notch:      th.Bg,
		Indicator:  th.SecondaryContainer,
		Color:      th.OnSurface,
		Height:     80,
		Face:       th.Face,
	}
}

func NavigationRail(th *Theme, items []NavItem, selected int, header layout.Widget) NavigationRailStyle {
	return NavigationRailStyle{
		Items:      items,
		Selected:   selected,
		Header:     header,
		Background: th.Surface,
		Divider:    th.SurfaceContainer,
		Indicator:  th.SecondaryContainer,
		Color:      th.OnSurface,
		Width:      80,
		Face:       th.Face,
	}
}

// Layout the bar across the maximum width. A non-nil fab reserves a
// notch in the top edge of the bar below the FAB.
func (n NavigationBarStyle) Layout(gtx layout.Context, fab *scaffold.FabPlacement) layout.Dimensions {
	size := gtx.Constraints.Constrain(image.Pt(
		gtx.Constraints.Max.X,
		gtx.Dp(n.Height+n.Inset),
	))
	bounds := image.Rectangle{Max: size}
	paint.FillRect(gtx.Ops, n.Background, bounds)
	if fab != nil {
		m := gtx.Dp(notchMargin)
		notch := image.Rect(fab.Left-m, 0, fab.Left+fab.Width+m, gtx.Dp(notchDepth))
		paint.FillRect(gtx.Ops, n.Notch, notch.Intersect(bounds))
	}
	children := make([]layout.FlexChild, len(n.Items))
	for i := range n.Items {
		idx := i
		if gtx.RTL() {
			idx = len(n.Items) - 1 - i
		}
		it := navItem{
			item:      n.Items[idx],
			selected:  idx == n.Selected,
			indicator: n.Indicator,
			pill:      image.Pt(gtx.Dp(64), gtx.Dp(32)),
			color:     n.Color,
			face:      n.Face,
		}
		children[i] = layout.Flexed(1, it.Layout)
	}
	gtx.Constraints = layout.Exact(size)
	layout.Inset{Bottom: n.Inset}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{}.Layout(gtx, children...)
	})
	return layout.Dimensions{Size: size}
}

// Layout the rail across the maximum height. Items are aligned to the
// bottom of the rail.
func (r NavigationRailStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Constrain(image.Pt(
		gtx.Dp(r.Width+r.Insets.Start),
		gtx.Constraints.Max.Y,
	))
	paint.FillRect(gtx.Ops, r.Background, image.Rectangle{Max: size})
	dw := gtx.Dp(1)
	divider := image.Rect(size.X-dw, 0, size.X, size.Y)
	var left, right unit.Dp = r.Insets.Start, 0
	if gtx.RTL() {
		divider = image.Rect(0, 0, dw, size.Y)
		left, right = right, left
	}
	paint.FillRect(gtx.Ops, r.Divider, divider)

	header := r.Header
	if header == nil {
		header = func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }
	}
	items := make([]layout.FlexChild, 0, 2*len(r.Items)+1)
	for i, item := range r.Items {
		it := navItem{
			item:      item,
			selected:  i == r.Selected,
			indicator: r.Indicator,
			pill:      image.Pt(gtx.Dp(56), gtx.Dp(32)),
			color:     r.Color,
			face:      r.Face,
		}
		if i > 0 {
			items = append(items, layout.Rigid(layout.Spacer{Height: 12}.Layout))
		}
		items = append(items, layout.Rigid(it.Layout))
	}
	items = append(items, layout.Rigid(layout.Spacer{Height: 12}.Layout))

	gtx.Constraints = layout.Exact(size)
	layout.Inset{
		Top:    r.Insets.Top,
		Bottom: r.Insets.Bottom,
		Left:   left,
		Right:  right,
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(layout.Spacer{Height: 6}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.N.Layout(gtx, header)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.S.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, items...)
				})
			}),
		)
	})
	return layout.Dimensions{Size: size}
}

func (n navItem) Layout(gtx layout.Context) layout.Dimensions {
	icon := LabelStyle{Text: n.item.Icon, Color: n.color, Face: n.face}
	label := LabelStyle{Text: n.item.Label, Color: n.color, Face: n.face}
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(layout.Spacer{Height: 12}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := gtx.Constraints.Loose().Constrain(n.pill)
			if n.selected {
				paint.FillRect(gtx.Ops, n.indicator, image.Rectangle{Max: size})
			}
			gtx.Constraints = layout.Exact(size)
			return layout.Center.Layout(gtx, icon.Layout)
		}),
		layout.Rigid(layout.Spacer{Height: 4}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.N.Layout(gtx, label.Layout)
		}),
	)
}
