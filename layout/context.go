// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/responsive/io/system"
	"gioui.org/responsive/op"
	"gioui.org/responsive/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// A zero value Context maps units to pixels with a scale of 1.0 and
// lays out left-to-right.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints

	Metric unit.Metric
	// Locale provides information on the system's language preferences.
	// Layouts mirror themselves when Locale.Direction is system.RTL.
	Locale system.Locale

	Ops *op.Ops
}

// NewContext is a shorthand for
//
//	Context{
//	  Ops: ops,
//	  Metric: e.Metric,
//	  Locale: e.Locale,
//	  Constraints: Exact(size),
//	}
//
// where size is the window size of e converted to pixels.
func NewContext(ops *op.Ops, e system.ConfigEvent) Context {
	ops.Reset()
	size := image.Pt(e.Metric.Dp(e.Width), e.Metric.Dp(e.Height))
	return Context{
		Ops:         ops,
		Metric:      e.Metric,
		Locale:      e.Locale,
		Constraints: Exact(size),
	}
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}

// RTL reports whether the context lays out right-to-left.
func (c Context) RTL() bool {
	return c.Locale.Direction == system.RTL
}
