// SPDX-License-Identifier: Unlicense OR MIT

// Package sizeclass classifies a window into the Material window size
// classes. Layouts use the width class to choose between compact
// (phone like) and expanded (tablet and desktop like) presentations.
//
// The classification is a pure function of the window size in dp and
// is meant to be recomputed whenever the window configuration changes.
package sizeclass

import (
	"fmt"
	"image"
	"strings"

	"gioui.org/responsive/unit"
)

// Class is a size bucket for a single window dimension.
type Class uint8

const (
	// Compact is the class for widths below 600dp, which
	// typically happens on phones in portrait.
	Compact Class = iota
	// Medium is the class for widths from 600dp up to 840dp,
	// such as tablets in portrait and unfolded foldables.
	Medium
	// Expanded is the class for widths of 840dp and more,
	// such as tablets in landscape and desktop windows.
	Expanded
)

// Width breakpoints.
const (
	MediumWidth   unit.Dp = 600
	ExpandedWidth unit.Dp = 840
)

// Height breakpoints.
const (
	MediumHeight   unit.Dp = 480
	ExpandedHeight unit.Dp = 900
)

// Size is a window size in device independent pixels, with the safe
// area insets already taken into account.
type Size struct {
	Width, Height unit.Dp
}

// WindowSizeClass holds the width and height classes of a window.
type WindowSizeClass struct {
	Width  Class
	Height Class
}

// WidthClass returns the class of a window width.
func WidthClass(w unit.Dp) Class {
	switch {
	case w < MediumWidth:
		return Compact
	case w < ExpandedWidth:
		return Medium
	default:
		return Expanded
	}
}

// HeightClass returns the class of a window height.
func HeightClass(h unit.Dp) Class {
	switch {
	case h < MediumHeight:
		return Compact
	case h < ExpandedHeight:
		return Medium
	default:
		return Expanded
	}
}

// Classify returns the size class of a width by height window.
// Negative sizes are treated as zero.
func Classify(width, height unit.Dp) WindowSizeClass {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return WindowSizeClass{
		Width:  WidthClass(width),
		Height: HeightClass(height),
	}
}

// Of is a shorthand for Classify(s.Width, s.Height).
func Of(s Size) WindowSizeClass {
	return Classify(s.Width, s.Height)
}

// FromConstraints classifies a window of max pixels, converted to dp
// with m.
func FromConstraints(m unit.Metric, max image.Point) WindowSizeClass {
	return Classify(m.PxToDp(max.X), m.PxToDp(max.Y))
}

// IsCompactWidth reports whether the width class is Compact.
func (w WindowSizeClass) IsCompactWidth() bool {
	return w.Width == Compact
}

func (w WindowSizeClass) String() string {
	return fmt.Sprintf("%v x %v", w.Width, w.Height)
}

func (c Class) String() string {
	switch c {
	case Compact:
		return "Compact"
	case Medium:
		return "Medium"
	case Expanded:
		return "Expanded"
	default:
		panic("invalid Class")
	}
}

// ParseClass parses the case insensitive name of a Class.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact":
		return Compact, nil
	case "medium":
		return Medium, nil
	case "expanded":
		return Expanded, nil
	}
	return 0, fmt.Errorf("sizeclass: unknown class %q", s)
}
