// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/op/paint"
)

// LabelStyle draws a single line of text.
type LabelStyle struct {
	Text string
	// Color is the text color.
	Color color.NRGBA
	Face  font.Face
}

func Label(th *Theme, txt string) LabelStyle {
	return LabelStyle{
		Text:  txt,
		Color: th.Fg,
		Face:  th.Face,
	}
}

func (l LabelStyle) Layout(gtx layout.Context) layout.Dimensions {
	if l.Text == "" {
		return layout.Dimensions{}
	}
	sz := gtx.Constraints.Constrain(textSize(l.Face, l.Text))
	paint.ColorOp{Color: l.Color}.Add(gtx.Ops)
	paint.LabelOp{Text: l.Text}.Add(gtx.Ops)
	return layout.Dimensions{
		Size:     sz,
		Baseline: l.Face.Metrics().Descent.Ceil(),
	}
}

func textSize(face font.Face, txt string) image.Point {
	return image.Point{
		X: font.MeasureString(face, txt).Ceil(),
		Y: face.Metrics().Height.Ceil(),
	}
}
