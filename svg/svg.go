// SPDX-License-Identifier: Unlicense OR MIT

// Package svg exports operation lists as SVG documents.
package svg

import (
	"fmt"
	"image"
	"io"

	svgo "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"gioui.org/responsive/internal/ops"
	"gioui.org/responsive/op"
)

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

// Encode writes the rectangles and labels drawn by o as an SVG
// document of the given size.
func Encode(w io.Writer, o *op.Ops, size image.Point) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Start(size.X, size.Y)
	canvas.Rect(0, 0, size.X, size.Y, "fill:none")
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	for _, it := range ops.Flatten(o) {
		c := it.Color
		style := fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
		if c.A != 0xff {
			style += fmt.Sprintf(";fill-opacity:%.3f", float64(c.A)/0xff)
		}
		if it.Label != "" {
			canvas.Text(it.Rect.Min.X, it.Rect.Min.Y+ascent, it.Label,
				style+";font-family:monospace;font-size:13px")
			continue
		}
		r := it.Rect.Canon()
		if r.Empty() {
			continue
		}
		canvas.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), style)
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("svg: %w", ew.err)
	}
	return nil
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
