// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/op/paint"
	"gioui.org/responsive/unit"
)

// FABStyle is a floating action button.
type FABStyle struct {
	Icon       string
	Background color.NRGBA
	Color      color.NRGBA
	Size       unit.Dp
	Face       font.Face
}

func FAB(th *Theme, icon string) FABStyle {
	return FABStyle{
		Icon:       icon,
		Background: th.PrimaryContainer,
		Color:      th.OnPrimaryContainer,
		Size:       56,
		Face:       th.Face,
	}
}

func (f FABStyle) Layout(gtx layout.Context) layout.Dimensions {
	sz := gtx.Dp(f.Size)
	size := gtx.Constraints.Constrain(image.Pt(sz, sz))
	paint.FillRect(gtx.Ops, f.Background, image.Rectangle{Max: size})
	gtx.Constraints = layout.Exact(size)
	icon := LabelStyle{Text: f.Icon, Color: f.Color, Face: f.Face}
	return layout.Center.Layout(gtx, icon.Layout)
}
