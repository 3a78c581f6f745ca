// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a CPU rasterizer for operation lists.

Rectangles are filled with their color and labels are drawn with a
fixed bitmap face; there is no anti-aliasing and no clipping beyond
the frame bounds.
*/
package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gioui.org/responsive/internal/ops"
	"gioui.org/responsive/op"
)

type Rasterizer struct {
	// Face draws labels. The zero value uses basicfont.Face7x13.
	Face font.Face
}

// Frame draws frame over frameBuf.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent := fixed.Point26_6{Y: face.Metrics().Ascent}
	bounds := frameBuf.Bounds()
	for _, it := range ops.Flatten(frame) {
		material := image.NewUniform(it.Color)
		if it.Label != "" {
			dr := font.Drawer{
				Dst:  frameBuf,
				Src:  material,
				Face: face,
				Dot:  fixed.P(it.Rect.Min.X, it.Rect.Min.Y).Add(ascent),
			}
			dr.DrawString(it.Label)
			continue
		}
		rect := it.Rect.Intersect(bounds)
		if rect.Empty() {
			continue
		}
		draw.Draw(frameBuf, rect, material, image.Point{}, draw.Over)
	}
}

// Scale resamples src to size.
func Scale(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
