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

// SnackbarStyle shows a short message. An empty message draws
// nothing, which leaves the scaffold snackbar slot absent.
type SnackbarStyle struct {
	Message    string
	Background color.NRGBA
	Color      color.NRGBA
	MaxWidth   unit.Dp
	Height     unit.Dp
	Padding    unit.Dp
	Face       font.Face
}

func Snackbar(th *Theme, msg string) SnackbarStyle {
	return SnackbarStyle{
		Message:    msg,
		Background: th.InverseSurface,
		Color:      th.InverseOnSurface,
		MaxWidth:   600,
		Height:     48,
		Padding:    16,
		Face:       th.Face,
	}
}

func (s SnackbarStyle) Layout(gtx layout.Context) layout.Dimensions {
	if s.Message == "" {
		return layout.Dimensions{}
	}
	cs := gtx.Constraints
	if max := gtx.Dp(s.MaxWidth); cs.Max.X > max {
		cs.Max.X = max
	}
	pad := gtx.Dp(s.Padding)
	msg := LabelStyle{Text: s.Message, Color: s.Color, Face: s.Face}
	size := cs.Constrain(image.Pt(
		textSize(s.Face, s.Message).X+2*pad,
		gtx.Dp(s.Height),
	))
	paint.FillRect(gtx.Ops, s.Background, image.Rectangle{Max: size})
	align := layout.W
	if gtx.RTL() {
		align = layout.E
	}
	gtx.Constraints = layout.Exact(size)
	layout.Inset{Left: s.Padding, Right: s.Padding}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return align.Layout(gtx, msg.Layout)
	})
	return layout.Dimensions{Size: size}
}
