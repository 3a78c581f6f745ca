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

type TopAppBarStyle struct {
	Title      string
	Background color.NRGBA
	// Color is the title color.
	Color  color.NRGBA
	Height unit.Dp
	// Insets are applied inside the bar. Use scaffold.TopBarInsets to
	// drop the sides owned by a side rail.
	Insets scaffold.Insets
	Face   font.Face
}

func TopAppBar(th *Theme, title string) TopAppBarStyle {
	return TopAppBarStyle{
		Title:      title,
		Background: th.Surface,
		Color:      th.OnSurface,
		Height:     64,
		Face:       th.Face,
	}
}

// Layout the bar across the maximum width.
func (b TopAppBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Constrain(image.Pt(
		gtx.Constraints.Max.X,
		gtx.Dp(b.Height+b.Insets.Top),
	))
	paint.FillRect(gtx.Ops, b.Background, image.Rectangle{Max: size})
	title := LabelStyle{Text: b.Title, Color: b.Color, Face: b.Face}
	left, right := b.Insets.Start, b.Insets.End
	align := layout.W
	if gtx.RTL() {
		left, right = right, left
		align = layout.E
	}
	gtx.Constraints = layout.Exact(size)
	layout.Inset{
		Top:   b.Insets.Top,
		Left:  left + 16,
		Right: right + 16,
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return align.Layout(gtx, title.Layout)
	})
	return layout.Dimensions{Size: size}
}
