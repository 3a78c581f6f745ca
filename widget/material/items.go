// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/op/paint"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/unit"
)

// ItemsStyle is the main content of the demo: a vertical list of
// numbered rows kept clear of the scaffold chrome.
type ItemsStyle struct {
	Count      int
	Background color.NRGBA
	Color      color.NRGBA
	// Spacing separates rows, Margin pads the list horizontally and
	// vertically.
	Spacing unit.Dp
	Margin  unit.Dp
	Face    font.Face
	// List holds the scroll position. A nil List starts at the top.
	List *layout.List
}

func Items(th *Theme, n int) ItemsStyle {
	return ItemsStyle{
		Count:      n,
		Background: th.Bg,
		Color:      th.Fg,
		Spacing:    8,
		Margin:     16,
		Face:       th.Face,
	}
}

// Layout fills the maximum constraints and lays out the rows inside
// pad. It has the signature of scaffold.Content.
func (it ItemsStyle) Layout(gtx layout.Context, pad scaffold.Padding) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillRect(gtx.Ops, it.Background, image.Rectangle{Max: size})
	list := it.List
	if list == nil {
		list = &layout.List{Axis: layout.Vertical}
	}
	in := pad.Inset(gtx.Metric, gtx.Locale.Direction)
	in.Left += it.Margin
	in.Right += it.Margin
	gtx.Constraints = layout.Exact(size)
	in.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		// The first and last rows are margins.
		return list.Layout(gtx, it.Count+2, it.row)
	})
	return layout.Dimensions{Size: size}
}

func (it ItemsStyle) row(gtx layout.Context, i int) layout.Dimensions {
	if i == 0 || i == it.Count+1 {
		return layout.Spacer{Height: it.Margin}.Layout(gtx)
	}
	var top unit.Dp
	if i > 1 {
		top = it.Spacing
	}
	align := layout.W
	if gtx.RTL() {
		align = layout.E
	}
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	lbl := LabelStyle{Text: fmt.Sprintf("Item: %d", i-1), Color: it.Color, Face: it.Face}
	return layout.Inset{Top: top}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return align.Layout(gtx, lbl.Layout)
	})
}
